package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomina/payroll-engine/payroll"
	"github.com/nomina/payroll-engine/store/memory"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	saved, err := s.SaveEntries(ctx, []payroll.Entry{
		{Date: payroll.NewDate(2025, time.March, 12), Shift: payroll.ShiftMorning, Novelty: payroll.NoveltyNormal},
		{Date: payroll.NewDate(2025, time.March, 10), Shift: payroll.ShiftNight, Novelty: payroll.NoveltyNormal},
	})
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].ID)

	listed, err := s.ListEntries(ctx,
		payroll.NewDate(2025, time.March, 1), payroll.NewDate(2025, time.March, 31))
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, payroll.ShiftNight, listed[0].Shift, "listing is date ascending")

	require.NoError(t, s.DeleteEntry(ctx, saved[0].ID))
	listed, err = s.ListEntries(ctx,
		payroll.NewDate(2025, time.March, 1), payroll.NewDate(2025, time.March, 31))
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestMemoryStoreSettings(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, payroll.DefaultSettings(), settings)

	settings.BaseSalary = 1_400_000
	require.NoError(t, s.PutSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1_400_000), got.BaseSalary)
}
