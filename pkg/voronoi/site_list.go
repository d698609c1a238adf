package voronoi

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// SiteList владеет отсортированной копией входных точек
type SiteList struct {
	sites   []*Site
	next    int
	sitenum int

	extent Extent
}

func newSiteList(points []Vertex) (*SiteList, error) {
	if len(points) == 0 {
		return nil, ErrInsufficientInput
	}

	s := &SiteList{
		sites: make([]*Site, 0, len(points)),
		extent: Extent{
			Xmin: math.Inf(1), Xmax: math.Inf(-1),
			Ymin: math.Inf(1), Ymax: math.Inf(-1),
		},
	}

	for i, pt := range points {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return nil, errors.Wrapf(ErrInvalidPoint, "point %d (%v, %v)", i, pt.X, pt.Y)
		}
		s.sites = append(s.sites, &Site{X: pt.X, Y: pt.Y, sitenum: i})

		s.extent.Xmin = math.Min(s.extent.Xmin, pt.X)
		s.extent.Xmax = math.Max(s.extent.Xmax, pt.X)
		s.extent.Ymin = math.Min(s.extent.Ymin, pt.Y)
		s.extent.Ymax = math.Max(s.extent.Ymax, pt.Y)
	}

	sort.Sort(sitesByY(s.sites))

	return s, nil
}

func (s *SiteList) Len() int { return len(s.sites) }

func (s *SiteList) Extent() Extent { return s.extent }

// pop выдает точки по возрастанию, после конца возвращает nil
func (s *SiteList) pop() *Site {
	if s.next >= len(s.sites) {
		return nil
	}
	site := s.sites[s.next]
	s.next++
	return site
}

// setSiteNumber выдает вершине следующий порядковый номер
func (s *SiteList) setSiteNumber(site *Site) {
	site.sitenum = s.sitenum
	s.sitenum++
}
