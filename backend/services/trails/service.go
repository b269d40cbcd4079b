package trails

import (
	"errors"
	"sort"
	"time"

	"youedu/backend/models"
	"youedu/backend/services/youtube"
	"youedu/backend/store"
)

const (
	tableTrails      = "trails"
	tableTrailVideos = "trail_videos"
)

var ErrTrailNotFound = errors.New("trail not found")

type Service struct {
	store store.RowStore
}

func NewService(st store.RowStore) *Service {
	return &Service{store: st}
}

// TrailWithVideos pairs a trail with its ordered video list.
type TrailWithVideos struct {
	models.Trail
	Videos []models.TrailVideo `json:"videos"`
}

func (s *Service) Create(trail models.Trail) (*models.Trail, error) {
	row, err := s.store.CreateRecord(tableTrails, store.Row{
		"user_id":         trail.UserID,
		"title":           trail.Title,
		"description":     trail.Description,
		"cover_image_url": trail.CoverImageURL,
		"is_public":       trail.IsPublic,
		"created_at":      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	var out models.Trail
	if err := store.Decode(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Service) Get(id string) (*TrailWithVideos, error) {
	row, err := s.store.GetRecordByID(tableTrails, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrTrailNotFound
	}
	if err != nil {
		return nil, err
	}

	var trail models.Trail
	if err := store.Decode(row, &trail); err != nil {
		return nil, err
	}
	videos, err := s.Videos(id)
	if err != nil {
		return nil, err
	}
	return &TrailWithVideos{Trail: trail, Videos: videos}, nil
}

// List returns trails, optionally restricted to one owner.
func (s *Service) List(userID string) ([]models.Trail, error) {
	filters := store.Filters{}
	if userID != "" {
		filters["user_id"] = userID
	}
	rows, err := s.store.GetAllRecords(tableTrails, filters)
	if err != nil {
		return nil, err
	}
	out := make([]models.Trail, 0, len(rows))
	for _, row := range rows {
		var trail models.Trail
		if err := store.Decode(row, &trail); err != nil {
			return nil, err
		}
		out = append(out, trail)
	}
	return out, nil
}

func (s *Service) Update(id string, fields store.Row) (*models.Trail, error) {
	row, err := s.store.UpdateRecord(tableTrails, id, fields)
	if errors.Is(err, store.ErrRecordNotFound) {
		return nil, ErrTrailNotFound
	}
	if err != nil {
		return nil, err
	}
	var trail models.Trail
	if err := store.Decode(row, &trail); err != nil {
		return nil, err
	}
	return &trail, nil
}

// Delete removes a trail and its videos.
func (s *Service) Delete(id string) error {
	videos, err := s.store.GetAllRecords(tableTrailVideos, store.Filters{"trail_id": id})
	if err != nil {
		return err
	}
	for _, row := range videos {
		if videoID, ok := row["id"].(string); ok {
			if err := s.store.DeleteRecord(tableTrailVideos, videoID); err != nil {
				return err
			}
		}
	}
	if err := s.store.DeleteRecord(tableTrails, id); errors.Is(err, store.ErrRecordNotFound) {
		return ErrTrailNotFound
	} else if err != nil {
		return err
	}
	return nil
}

// AddVideo parses the URL for provider info and appends the video at the end
// of the trail.
func (s *Service) AddVideo(trailID, videoURL, title string, durationSeconds int) (*models.TrailVideo, error) {
	if _, err := s.store.GetRecordByID(tableTrails, trailID); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ErrTrailNotFound
		}
		return nil, err
	}

	provider, providerVideoID := "", ""
	if info, err := youtube.ParseVideoURL(videoURL); err == nil {
		provider = info.Provider
		providerVideoID = info.VideoID
	}

	count, err := s.store.CountRecords(tableTrailVideos, store.Filters{"trail_id": trailID})
	if err != nil {
		return nil, err
	}

	row, err := s.store.CreateRecord(tableTrailVideos, store.Row{
		"trail_id":         trailID,
		"video_url":        videoURL,
		"video_provider":   provider,
		"video_id":         providerVideoID,
		"title":            title,
		"duration_seconds": durationSeconds,
		"order_index":      int(count),
	})
	if err != nil {
		return nil, err
	}
	var video models.TrailVideo
	if err := store.Decode(row, &video); err != nil {
		return nil, err
	}
	return &video, nil
}

// Videos returns a trail's videos ordered by position.
func (s *Service) Videos(trailID string) ([]models.TrailVideo, error) {
	rows, err := s.store.GetAllRecords(tableTrailVideos, store.Filters{"trail_id": trailID})
	if err != nil {
		return nil, err
	}
	out := make([]models.TrailVideo, 0, len(rows))
	for _, row := range rows {
		var video models.TrailVideo
		if err := store.Decode(row, &video); err != nil {
			return nil, err
		}
		out = append(out, video)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}
