// Package static - куски HTML страницы с диаграммой. Между Part1 и Part2
// вставляется график, между Part2 и Part3 - логи построения.
package static

var (
	Part1 = `<!DOCTYPE html>
<html lang="ru">
<head>
    <meta charset="utf-8">
    <title>Диаграмма Вороного и триангуляция Делоне</title>
    <style>
        :root {
            --bg: #1f1f1f;
            --panel: #2b2b2b;
            --line: #444;
            --text: #d3d3d3;
            --muted: #909090;
        }

        body {
            margin: 0;
            background: var(--bg);
            color: var(--text);
            font-family: Consolas, monospace;
        }

        main {
            display: grid;
            grid-template-columns: minmax(0, 1fr) minmax(0, 1fr);
            height: 100vh;
        }

        section {
            padding: 12px;
            overflow: auto;
        }

        section.logs {
            border-left: 4px solid var(--line);
        }

        h1 {
            font-size: 20px;
        }

        fieldset {
            border: 1px solid var(--line);
            border-radius: 4px;
            display: grid;
            grid-template-columns: max-content 160px;
            gap: 6px 12px;
            align-items: center;
        }

        input {
            background: var(--panel);
            color: var(--text);
            border: 1px solid var(--line);
            border-radius: 4px;
            padding: 4px;
        }

        input[type="submit"] {
            margin-top: 8px;
            cursor: pointer;
        }

        input[type="submit"]:hover {
            background: var(--line);
        }

        .hint, .hint a {
            color: var(--muted);
            font-size: 12px;
        }

        #logs pre {
            white-space: pre-wrap;
            word-break: break-word;
        }
    </style>
</head>
<body>
<main>
    <section>
        <h1>Диаграмма Вороного (алгоритм Форчуна)</h1>
        <form id="diagram-form" method="POST">
            <fieldset>
                <legend>Станции</legend>
                <label for="width">Ширина (W)</label>
                <input type="number" id="width" name="width" value="1000" min="1" max="5000">
                <label for="height">Высота (H)</label>
                <input type="number" id="height" name="height" value="1000" min="1" max="5000">
                <label for="stations">Количество (n)</label>
                <input type="number" id="stations" name="stations" value="12" min="1" max="5000">
                <label for="random">Случайно</label>
                <input type="checkbox" id="random" name="random" value="true">
                <label for="seed">seed</label>
                <input type="number" id="seed" name="seed">
                <label for="delaunay">Делоне поверх</label>
                <input type="checkbox" id="delaunay" name="delaunay" value="true">
            </fieldset>
            <input type="submit" value="Построить">
        </form>
        <p class="hint">
            PNG: <a href="/diagram.png?width=800&height=800&stations=30&random=true&seed=1">/diagram.png</a><br>
            JSON: POST /api/voronoi, /api/delaunay, /api/geojson
        </p>
`

	Part2 = `
    </section>
    <section class="logs">
        <h1>Логи</h1>
        <div id="logs">`

	Part3 = `
        </div>
    </section>
</main>
<script>
    // страница перерисовывается целиком ответом сервера
    document.getElementById('diagram-form').addEventListener('submit', async function (e) {
        e.preventDefault();
        const body = new URLSearchParams(new FormData(this));
        try {
            const resp = await fetch('/', {method: 'POST', body: body});
            const html = await resp.text();
            if (!resp.ok) {
                throw new Error(html);
            }
            document.open();
            document.write(html);
            document.close();
        } catch (err) {
            console.error('Ошибка:', err);
        }
    });
</script>
</body>
</html>
`
)
