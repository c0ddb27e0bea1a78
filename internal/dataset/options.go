package dataset

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultSeed reproduces the canonical dataset the admin panel was
// developed against.
const DefaultSeed int64 = 20260109

var optionsValidator = validator.New(validator.WithRequiredStructEnabled())

// Options configures a generation run. The same seed and counts always
// produce an identical snapshot for a fixed Now.
type Options struct {
	Seed int64

	Users         int `validate:"min=0"`
	Products      int `validate:"min=0"`
	Offers        int `validate:"min=0"`
	Threads       int `validate:"min=0"`
	Messages      int `validate:"min=0"`
	Notifications int `validate:"min=0"`
	Reports       int `validate:"min=0"`

	// Now anchors every relative date in the dataset. Zero means
	// time.Now().UTC() at generation time.
	Now time.Time
}

// DefaultOptions returns the canonical generation sizes.
func DefaultOptions() Options {
	return Options{
		Seed:          DefaultSeed,
		Users:         80,
		Products:      400,
		Offers:        300,
		Threads:       180,
		Messages:      4000,
		Notifications: 1200,
		Reports:       120,
	}
}

// Validate rejects malformed option sets before any entity is built, so a
// partially generated snapshot can never escape.
func (o Options) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("invalid generation options: %w", err)
	}
	return nil
}
