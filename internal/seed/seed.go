// Package seed loads the initial court catalog and operating hours from a
// TOML file.
package seed

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

// File is the seed document:
//
//	[operating_hours]
//	slot_duration_minutes = 60
//	closed_days = ["Domingo"]
//	[operating_hours.weekdays]
//	start = "08:00"
//	end = "22:00"
//
//	[[courts]]
//	name = "Quadra 1"
//	price = 120.0
type File struct {
	OperatingHours *schedule.Config `toml:"operating_hours"`
	Courts         []CourtEntry     `toml:"courts"`
}

type CourtEntry struct {
	Name  string  `toml:"name"`
	Price float64 `toml:"price"`
}

func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("seed file %s has unknown keys: %v", path, undecoded)
	}
	return &f, nil
}

func Decode(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("seed has unknown keys: %v", undecoded)
	}
	return &f, nil
}

// Courts is the part of court.Service the seeder needs.
type Courts interface {
	All(ctx context.Context) ([]*court.Court, error)
	Create(ctx context.Context, req court.CreateRequest) (*court.Court, error)
}

type Hours interface {
	Update(ctx context.Context, hours schedule.Config) (*settings.Settings, error)
}

// Apply writes f through the services. Courts whose name already exists
// (case-insensitive) are left untouched, so running it twice is harmless.
func Apply(ctx context.Context, f *File, courts Courts, hours Hours, log *zap.Logger) error {
	if f.OperatingHours != nil {
		if _, err := hours.Update(ctx, *f.OperatingHours); err != nil {
			return fmt.Errorf("seed operating hours: %w", err)
		}
		log.Info("operating hours seeded")
	}

	existing, err := courts.All(ctx)
	if err != nil {
		return fmt.Errorf("list courts: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(strings.TrimSpace(c.Name))] = true
	}

	for _, entry := range f.Courts {
		key := strings.ToLower(strings.TrimSpace(entry.Name))
		if known[key] {
			log.Debug("court already present", zap.String("name", entry.Name))
			continue
		}
		c, err := courts.Create(ctx, court.CreateRequest{Name: entry.Name, Price: entry.Price})
		if err != nil {
			return fmt.Errorf("seed court %q: %w", entry.Name, err)
		}
		known[key] = true
		log.Info("court seeded", zap.String("id", c.ID), zap.String("name", c.Name))
	}
	return nil
}
