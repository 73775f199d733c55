// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMoodSvc(t *testing.T) *clientMoodLogService {
	t.Helper()
	svc := NewClientMoodLogService(validators.NewJournalValidator())
	return svc.(*clientMoodLogService)
}

func TestClientMoodLogService_Append_NewestFirst(t *testing.T) {
	svc := newTestMoodSvc(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	tick := 0
	svc.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	require.NoError(t, svc.Append(2, "утро"))
	require.NoError(t, svc.Append(4, "вечер"))

	records := svc.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 4, records[0].Score)
	assert.Equal(t, "вечер", records[0].Note)
	assert.Equal(t, 2, records[1].Score)
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))
}

func TestClientMoodLogService_Append_CapKeepsNewestFourteen(t *testing.T) {
	svc := newTestMoodSvc(t)

	// 15 сохранений: самая старая запись вытесняется
	for i := 1; i <= 15; i++ {
		score := i%5 + 1
		require.NoError(t, svc.Append(score, ""))
	}

	records := svc.Records()
	require.Len(t, records, moodLogLimit)
	// первая запись журнала соответствует последнему сохранению (i=15)
	assert.Equal(t, 15%5+1, records[0].Score)
	// самое старое из оставшихся соответствует i=2
	assert.Equal(t, 2%5+1, records[len(records)-1].Score)
}

func TestClientMoodLogService_Append_InvalidScore(t *testing.T) {
	svc := newTestMoodSvc(t)

	err := svc.Append(0, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidMoodScore)

	err = svc.Append(6, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, validators.ErrInvalidMoodScore)

	assert.Empty(t, svc.Records())
}

func TestClientMoodLogService_Records_ReturnsCopy(t *testing.T) {
	svc := newTestMoodSvc(t)

	require.NoError(t, svc.Append(3, "так себе"))

	records := svc.Records()
	records[0].Note = "изменено снаружи"

	assert.Equal(t, "так себе", svc.Records()[0].Note)
}
