package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/craftlypost/craftly-api/internal/domain"
	"github.com/craftlypost/craftly-api/internal/store"
)

const (
	// Each generated item is assumed to save fifteen minutes of manual
	// writing when estimating timeSaved.
	minutesSavedPerItem = 15

	recentContentLimit = 5
	recentTitleMaxLen  = 60
)

// DashboardStats is the headline counters block of the dashboard.
type DashboardStats struct {
	PostsGenerated int    `json:"postsGenerated"`
	ImagesCreated  int    `json:"imagesCreated"`
	VideosMade     int    `json:"videosMade"`
	TimeSaved      string `json:"timeSaved"`
	PostsChange    string `json:"postsChange"`
	ImagesChange   string `json:"imagesChange"`
	VideosChange   string `json:"videosChange"`
	TimeChange     string `json:"timeChange"`
}

// RecentContentItem is a single row of the recent content feed.
type RecentContentItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Platform    string `json:"platform"`
	ContentType string `json:"contentType"`
	CreatedAt   string `json:"createdAt"`
	Icon        string `json:"icon"`
}

// PlatformUsage reports how often a platform was targeted. Percentage is
// relative to the most-used platform, not to the total, so the top
// platform always reads 100.
type PlatformUsage struct {
	Platform   string `json:"platform"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Stats         DashboardStats      `json:"stats"`
	RecentContent []RecentContentItem `json:"recentContent"`
	PlatformStats []PlatformUsage     `json:"platformStats"`
}

// DashboardService aggregates a user's content history into dashboard
// statistics.
type DashboardService interface {
	// Stats computes the dashboard payload for the user.
	Stats(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error)
}

type dashboardServiceImpl struct {
	contentStore store.ContentStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewDashboardService creates a DashboardService over the content store.
func NewDashboardService(contentStore store.ContentStore, logger *slog.Logger) (DashboardService, error) {
	if contentStore == nil {
		return nil, newServiceError("init", "content store is required", errMissingDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &dashboardServiceImpl{
		contentStore: contentStore,
		logger:       logger.With(slog.String("component", "dashboard_service")),
		now:          time.Now,
	}, nil
}

// Stats implements DashboardService.Stats.
func (s *dashboardServiceImpl) Stats(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	kindCounts, err := s.contentStore.CountByKind(ctx, userID)
	if err != nil {
		return nil, newServiceError("dashboard_stats", "failed to count content by kind", err)
	}

	platformCounts, err := s.contentStore.CountByPlatform(ctx, userID)
	if err != nil {
		return nil, newServiceError("dashboard_stats", "failed to count content by platform", err)
	}

	recent, err := s.contentStore.ListRecent(ctx, userID, recentContentLimit)
	if err != nil {
		return nil, newServiceError("dashboard_stats", "failed to list recent content", err)
	}

	total := 0
	for _, count := range kindCounts {
		total += count
	}

	// Percentage change figures need historical snapshots we do not keep
	// yet, so they render as flat.
	stats := DashboardStats{
		PostsGenerated: kindCounts[domain.ContentKindText],
		ImagesCreated:  kindCounts[domain.ContentKindImage],
		VideosMade:     kindCounts[domain.ContentKindVideo],
		TimeSaved:      fmt.Sprintf("%dhrs", total*minutesSavedPerItem/60),
		PostsChange:    "+0%",
		ImagesChange:   "+0%",
		VideosChange:   "+0%",
		TimeChange:     "+0%",
	}

	return &DashboardResponse{
		Stats:         stats,
		RecentContent: s.recentItems(recent),
		PlatformStats: platformUsage(platformCounts),
	}, nil
}

func (s *dashboardServiceImpl) recentItems(records []*domain.ContentRecord) []RecentContentItem {
	items := make([]RecentContentItem, 0, len(records))
	now := s.now()
	for _, record := range records {
		items = append(items, RecentContentItem{
			ID:          record.ID.String(),
			Title:       truncateTitle(record.Caption),
			Platform:    string(record.Platform),
			ContentType: string(record.Kind),
			CreatedAt:   formatTimeAgo(now, record.CreatedAt),
			Icon:        string(record.Platform),
		})
	}
	return items
}

func platformUsage(counts map[domain.Platform]int) []PlatformUsage {
	usage := make([]PlatformUsage, 0, len(counts))
	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	for platform, count := range counts {
		percentage := 0
		if maxCount > 0 {
			percentage = count * 100 / maxCount
		}
		usage = append(usage, PlatformUsage{
			Platform:   capitalize(string(platform)),
			Count:      count,
			Percentage: percentage,
		})
	}

	// Highest-volume platform first, name as tiebreaker for stable output.
	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Count != usage[j].Count {
			return usage[i].Count > usage[j].Count
		}
		return usage[i].Platform < usage[j].Platform
	})

	return usage
}

func truncateTitle(caption string) string {
	runes := []rune(caption)
	if len(runes) <= recentTitleMaxLen {
		return caption
	}
	return string(runes[:recentTitleMaxLen]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatTimeAgo humanizes how long ago a record was created.
func formatTimeAgo(now, created time.Time) string {
	if created.IsZero() {
		return "just now"
	}

	diff := now.Sub(created)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%d min ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%d hr ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(diff.Hours()/24))
	}
}
