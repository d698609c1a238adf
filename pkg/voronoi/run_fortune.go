package voronoi

import (
	"github.com/0x0FACED/go-sweepline/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// sweep - состояние одного прогона алгоритма Форчуна.
// Счетчик ребер живет здесь, а не в пакете, поэтому прогоны независимы.
type sweep struct {
	sites     *SiteList
	edges     *EdgeList
	queue     *PriorityQueue
	ctx       *Context
	edgeNum   int
	bottom    *Site
	prevSite  *Site
	logger    *logger.ZapLogger
	debug     bool
	siteCount int
	circles   int
}

func newSweep(sites *SiteList, ctx *Context, log *logger.ZapLogger) *sweep {
	extent := sites.Extent()
	return &sweep{
		sites:  sites,
		edges:  newEdgeList(extent.Xmin, extent.Xmax, sites.Len()),
		queue:  newPriorityQueue(extent.Ymin, extent.Ymax, sites.Len()),
		ctx:    ctx,
		logger: log,
		debug:  log.Enabled(zapcore.DebugLevel),
	}
}

func (s *sweep) bisect(s1, s2 *Site) *Edge {
	e := bisect(s1, s2, s.edgeNum)
	s.edgeNum++
	s.ctx.outBisector(e)
	return e
}

// Основной цикл: события точек и события круга, пока не кончатся и те, и другие
func (s *sweep) run() {
	s.logger.Info("[f] Алгоритм Форчуна запущен", zap.Int("sites", s.sites.Len()))

	s.bottom = s.sites.pop()
	s.prevSite = s.bottom
	s.ctx.outSite(s.bottom)
	s.siteCount++

	newsite := s.sites.pop()
	var minpt *Site

	for {
		if !s.queue.isEmpty() {
			minpt = s.queue.getMinPt()
		}

		if newsite != nil && (s.queue.isEmpty() || newsite.less(minpt)) {
			if newsite.equal(s.prevSite) {
				s.logger.Warn("[f-site] Найден дубликат, пропускаем", zap.Int("site", newsite.sitenum),
					zap.Float64("x", newsite.X), zap.Float64("y", newsite.Y))
			} else {
				s.siteEvent(newsite)
				s.prevSite = newsite
			}
			newsite = s.sites.pop()
		} else if !s.queue.isEmpty() {
			s.circleEvent()
		} else {
			break
		}
	}

	// оставшиеся на пляжной линии ребра уходят в бесконечность.
	// Оба полуребра одного ребра могут дожить до конца, ребро выводим один раз.
	emitted := make(map[int]bool)
	for he := s.edges.leftend.right; he != s.edges.rightend; he = he.right {
		if emitted[he.edge.edgenum] {
			continue
		}
		emitted[he.edge.edgenum] = true
		s.ctx.outEdge(he.edge)
	}

	s.logger.Info("[f] Алгоритм завершен",
		zap.Int("site_events", s.siteCount),
		zap.Int("circle_events", s.circles),
		zap.Int("edges", len(s.ctx.edges)),
		zap.Int("vertices", len(s.ctx.vertices)))
}

func (s *sweep) siteEvent(newsite *Site) {
	if s.debug {
		s.logger.Debug("[f-site] Событие точки", zap.Int("site", newsite.sitenum),
			zap.Float64("x", newsite.X), zap.Float64("y", newsite.Y))
	}
	s.ctx.outSite(newsite)
	s.siteCount++

	// полуребра слева и справа от новой точки
	lbnd := s.edges.leftbnd(newsite)
	rbnd := lbnd.right

	bot := lbnd.rightreg(s.bottom)
	edge := s.bisect(bot, newsite)

	bisector := newHalfedge(edge, le)
	s.edges.insert(lbnd, bisector)

	// левое полуребро теперь пересекается с новым - старое событие устарело
	if p := lbnd.intersect(bisector); p != nil {
		s.queue.delete(lbnd)
		s.queue.insert(lbnd, p, newsite.distance(p))
	}

	lbnd = bisector
	bisector = newHalfedge(edge, re)
	s.edges.insert(lbnd, bisector)

	if p := bisector.intersect(rbnd); p != nil {
		s.queue.insert(bisector, p, newsite.distance(p))
	}
}

func (s *sweep) circleEvent() {
	s.circles++

	lbnd := s.queue.popMinHalfedge()
	llbnd := lbnd.left
	rbnd := lbnd.right
	rrbnd := rbnd.right

	bot := lbnd.leftreg(s.bottom)
	top := rbnd.rightreg(s.bottom)
	mid := lbnd.rightreg(s.bottom)
	s.ctx.outTriple(bot, top, mid)

	// номер вершине даем только сейчас, когда событие точно произошло
	v := lbnd.vertex
	invariant(v != nil, "popped halfedge has no vertex")
	s.sites.setSiteNumber(v)
	s.ctx.outVertex(v)

	if s.debug {
		s.logger.Debug("[f-circle] Событие круга", zap.Int("vertex", v.sitenum),
			zap.Float64("x", v.X), zap.Float64("y", v.Y),
			zap.Int("bot", bot.sitenum), zap.Int("mid", mid.sitenum), zap.Int("top", top.sitenum))
	}

	if lbnd.edge.setEndpoint(lbnd.pm, v) {
		s.ctx.outEdge(lbnd.edge)
	}
	if rbnd.edge.setEndpoint(rbnd.pm, v) {
		s.ctx.outEdge(rbnd.edge)
	}

	s.edges.delete(lbnd)
	s.queue.delete(rbnd)
	s.edges.delete(rbnd)

	// нижняя точка слева - иначе меняем местами и разворачиваем полуребро
	pm := le
	if bot.Y > top.Y {
		bot, top = top, bot
		pm = re
	}

	edge := s.bisect(bot, top)
	bisector := newHalfedge(edge, pm)
	s.edges.insert(llbnd, bisector)
	if edge.setEndpoint(re-pm, v) {
		s.ctx.outEdge(edge)
	}

	if p := llbnd.intersect(bisector); p != nil {
		s.queue.delete(llbnd)
		s.queue.insert(llbnd, p, bot.distance(p))
	}
	if p := bisector.intersect(rrbnd); p != nil {
		s.queue.insert(bisector, p, bot.distance(p))
	}
}
