package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/othmanalikhan-apps/project-aardvark/pkg/types"
)

func TestRestaurantConfigSlots(t *testing.T) {
	tests := []struct {
		name      string
		catalogue []string
		want      []types.TimeString
		wantErr   bool
	}{
		{
			name:      "emptyCatalogueFallsBackToDefault",
			catalogue: nil,
			want:      []types.TimeString{"09:00", "11:00", "13:00", "15:00"},
		},
		{
			name:      "validCatalogue",
			catalogue: []string{"10:00", "12:30", "18:00"},
			want:      []types.TimeString{"10:00", "12:30", "18:00"},
		},
		{
			name:      "invalidTimeFormat",
			catalogue: []string{"9 am"},
			wantErr:   true,
		},
		{
			name:      "duplicateSlot",
			catalogue: []string{"09:00", "09:00"},
			wantErr:   true,
		},
		{
			name:      "unorderedCatalogue",
			catalogue: []string{"11:00", "09:00"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := RestaurantConfig{SlotCatalogue: tt.catalogue}
			got, err := cfg.Slots()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "aardvark",
		Password: "secret",
		DBName:   "aardvark",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.local port=5432 user=aardvark password=secret dbname=aardvark sslmode=disable",
		cfg.DSN())
}

func TestConfigValidate(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.User = "aardvark"
	cfg.Database.DBName = "aardvark"
	require.NoError(t, cfg.validate())

	cfg.Server.HTTPPort = 0
	assert.Error(t, cfg.validate())
}
