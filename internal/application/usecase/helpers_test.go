package usecase_test

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tlpui/internal/domain/entity"
	"github.com/bnema/tlpui/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func sampleEntries() []*entity.ConfigEntry {
	return []*entity.ConfigEntry{
		entity.NewConfigEntry("TLP_ENABLE", "1", true, false, 3),
		entity.NewConfigEntry("TLP_DEFAULT_MODE", "AC", false, false, 5),
		entity.NewConfigEntry("CPU_SCALING_GOVERNOR_ON_AC", "powersave", true, false, 9),
		entity.NewConfigEntry("DISK_DEVICES", "nvme0n1 sda", true, true, 12),
		entity.NewConfigEntry("START_CHARGE_THRESH_BAT0", "75", false, false, 20),
	}
}

func sampleCategories() []entity.CategoryDescriptor {
	return []entity.CategoryDescriptor{
		{
			Label: "General",
			Items: []entity.ItemDescriptor{
				{ID: "TLP_ENABLE", Type: entity.WidgetBSelect, Values: []string{"0", "1"}},
				{ID: "TLP_DEFAULT_MODE", Type: entity.WidgetSelect, Values: []string{"AC", "BAT"}},
			},
		},
		{
			Label: "Disks",
			Items: []entity.ItemDescriptor{
				{ID: "DISK_DEVICES", Type: entity.WidgetCheck, Values: []string{"nvme0n1", "sda", "sdb"}, Separator: " "},
			},
		},
		{
			Label: "Battery",
			Items: []entity.ItemDescriptor{
				{ID: "START_CHARGE_THRESH_BAT0", Type: entity.WidgetNumeric, Values: []string{"0", "100", "1"}},
			},
		},
	}
}
