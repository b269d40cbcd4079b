package trails

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"youedu/backend/models"
	"youedu/backend/store"
)

func TestCreateAndGet(t *testing.T) {
	svc := NewService(store.NewMemStore())

	created, err := svc.Create(models.Trail{UserID: "u1", Title: "Go básico", IsPublic: true})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Go básico", got.Title)
	assert.Empty(t, got.Videos)
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(store.NewMemStore())

	_, err := svc.Get("missing")
	assert.ErrorIs(t, err, ErrTrailNotFound)
}

func TestListByUser(t *testing.T) {
	svc := NewService(store.NewMemStore())
	_, _ = svc.Create(models.Trail{UserID: "u1", Title: "A"})
	_, _ = svc.Create(models.Trail{UserID: "u1", Title: "B"})
	_, _ = svc.Create(models.Trail{UserID: "u2", Title: "C"})

	mine, err := svc.List("u1")
	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := svc.List("")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAddVideoParsesURLAndOrders(t *testing.T) {
	svc := NewService(store.NewMemStore())
	trail, _ := svc.Create(models.Trail{UserID: "u1", Title: "Trilha"})

	first, err := svc.AddVideo(trail.ID, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "Aula 1", 300)
	assert.NoError(t, err)
	assert.Equal(t, "youtube", first.VideoProvider)
	assert.Equal(t, "dQw4w9WgXcQ", first.VideoID)
	assert.Equal(t, 0, first.OrderIndex)

	second, err := svc.AddVideo(trail.ID, "https://vimeo.com/76979871", "Aula 2", 400)
	assert.NoError(t, err)
	assert.Equal(t, 1, second.OrderIndex)

	videos, err := svc.Videos(trail.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Aula 1", "Aula 2"}, []string{videos[0].Title, videos[1].Title})
}

func TestAddVideoUnknownTrail(t *testing.T) {
	svc := NewService(store.NewMemStore())

	_, err := svc.AddVideo("missing", "https://youtu.be/dQw4w9WgXcQ", "Aula", 0)
	assert.ErrorIs(t, err, ErrTrailNotFound)
}

func TestDeleteRemovesVideos(t *testing.T) {
	st := store.NewMemStore()
	svc := NewService(st)
	trail, _ := svc.Create(models.Trail{UserID: "u1", Title: "Trilha"})
	_, _ = svc.AddVideo(trail.ID, "https://youtu.be/dQw4w9WgXcQ", "Aula", 0)

	assert.NoError(t, svc.Delete(trail.ID))

	count, _ := st.CountRecords("trail_videos", store.Filters{"trail_id": trail.ID})
	assert.Equal(t, int64(0), count)
	assert.ErrorIs(t, svc.Delete(trail.ID), ErrTrailNotFound)
}

func TestUpdate(t *testing.T) {
	svc := NewService(store.NewMemStore())
	trail, _ := svc.Create(models.Trail{UserID: "u1", Title: "Antigo"})

	updated, err := svc.Update(trail.ID, store.Row{"title": "Novo"})
	assert.NoError(t, err)
	assert.Equal(t, "Novo", updated.Title)

	_, err = svc.Update("missing", store.Row{"title": "x"})
	assert.ErrorIs(t, err, ErrTrailNotFound)
}
