// Package dashboard derives the KPI figures shown above the project table.
package dashboard

import (
	"sort"

	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

// Slice is one segment of a distribution chart.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Summary struct {
	TotalProjects      int     `json:"totalProjects"`
	TotalClients       int     `json:"totalClients"`
	ActiveProjects     int     `json:"activeProjects"`
	CompletedProjects  int     `json:"completedProjects"`
	MediaDistribution  []Slice `json:"mediaDistribution"`
	StatusDistribution []Slice `json:"statusDistribution"`
}

// Summarize computes the dashboard figures. Media slices are ordered by count,
// largest first, with ties kept in first-seen order; status slices keep
// first-seen order.
func Summarize(projects []domain.Project) Summary {
	s := Summary{
		TotalProjects:      len(projects),
		MediaDistribution:  []Slice{},
		StatusDistribution: []Slice{},
	}

	clients := make(map[string]struct{}, len(projects))
	mediaIdx := make(map[string]int)
	statusIdx := make(map[string]int)

	for _, p := range projects {
		clients[p.ClientName] = struct{}{}

		switch p.Status {
		case domain.StatusInProgress:
			s.ActiveProjects++
		case domain.StatusCompleted:
			s.CompletedProjects++
		}

		s.MediaDistribution = tally(s.MediaDistribution, mediaIdx, p.Media)
		s.StatusDistribution = tally(s.StatusDistribution, statusIdx, p.Status)
	}
	s.TotalClients = len(clients)

	sort.SliceStable(s.MediaDistribution, func(i, j int) bool {
		return s.MediaDistribution[i].Value > s.MediaDistribution[j].Value
	})
	return s
}

func tally(slices []Slice, idx map[string]int, name string) []Slice {
	if i, ok := idx[name]; ok {
		slices[i].Value++
		return slices
	}
	idx[name] = len(slices)
	return append(slices, Slice{Name: name, Value: 1})
}

// Tone values used to colour status badges.
const (
	ToneCompleted  = "completed"
	ToneInProgress = "in-progress"
	ToneOnHold     = "on-hold"
	ToneUnknown    = "unknown"
)

// StatusTone maps a status to its badge tone. Free-form statuses are unknown.
func StatusTone(status string) string {
	switch status {
	case domain.StatusCompleted:
		return ToneCompleted
	case domain.StatusInProgress:
		return ToneInProgress
	case domain.StatusOnHold:
		return ToneOnHold
	default:
		return ToneUnknown
	}
}

// KnownMedia reports whether media is one of the types the form offers.
func KnownMedia(media string) bool {
	switch media {
	case domain.MediaVideo, domain.MediaWeb, domain.MediaSocial, domain.MediaPrint, domain.MediaOther:
		return true
	}
	return false
}
