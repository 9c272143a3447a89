package schedule

import (
	"context"
	"time"

	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

type Repository interface {
	Insert(ctx context.Context, s Session) (*Session, error)
	FindAll(ctx context.Context) ([]Session, error)
	FindByID(ctx context.Context, id int) (*Session, error)
	FindByOwner(ctx context.Context, ownerID int) ([]Session, error)
	FindByVenueAndDate(ctx context.Context, v venue.Venue, date time.Time) ([]Session, error)
	Replace(ctx context.Context, id int, s Session) (*Session, error)
	Delete(ctx context.Context, id int) error
}
