package ledger_test

import (
	"testing"

	"go-leave/internal/ledger"
	ledgererrors "go-leave/internal/ledger/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func entry(allocated, used, pending, carried string) *ledger.LeaveBalance {
	return &ledger.LeaveBalance{
		TotalAllocated: d(allocated),
		Used:           d(used),
		Pending:        d(pending),
		CarriedForward: d(carried),
	}
}

func TestLeaveBalance_Available(t *testing.T) {
	b := entry("12", "3", "1.5", "2")
	assert.True(t, b.Available().Equal(d("9.5")))
}

func TestLeaveBalance_PlaceHold(t *testing.T) {
	t.Run("reserves days as pending", func(t *testing.T) {
		b := entry("10", "2", "0", "0")

		err := b.PlaceHold(d("3"))

		assert.NoError(t, err)
		assert.True(t, b.Pending.Equal(d("3")))
		assert.True(t, b.Available().Equal(d("5")))
	})

	t.Run("allows draining the balance to exactly zero", func(t *testing.T) {
		b := entry("10", "4", "3", "0")

		err := b.PlaceHold(d("3"))

		assert.NoError(t, err)
		assert.True(t, b.Available().Equal(d("0")))
	})

	t.Run("rejects a hold that would overdraw", func(t *testing.T) {
		b := entry("10", "4", "3", "0")

		err := b.PlaceHold(d("3.5"))

		assert.ErrorIs(t, err, ledgererrors.ErrInsufficientBalance)
		// Entry unchanged on rejection.
		assert.True(t, b.Pending.Equal(d("3")))
		assert.True(t, b.Used.Equal(d("4")))
	})

	t.Run("counts carried forward days as spendable", func(t *testing.T) {
		b := entry("0", "0", "0", "2.5")

		err := b.PlaceHold(d("2.5"))

		assert.NoError(t, err)
		assert.True(t, b.Available().Equal(d("0")))
	})
}

func TestLeaveBalance_ReleaseHold(t *testing.T) {
	t.Run("returns pending days", func(t *testing.T) {
		b := entry("10", "2", "3", "0")

		b.ReleaseHold(d("3"))

		assert.True(t, b.Pending.Equal(d("0")))
		assert.True(t, b.Used.Equal(d("2")))
		assert.True(t, b.Available().Equal(d("8")))
	})

	t.Run("floors pending at zero on over-release", func(t *testing.T) {
		b := entry("10", "0", "1", "0")

		b.ReleaseHold(d("2.5"))

		assert.True(t, b.Pending.Equal(d("0")))
	})
}

func TestLeaveBalance_CommitHold(t *testing.T) {
	t.Run("moves pending into used", func(t *testing.T) {
		b := entry("10", "2", "3", "0")

		b.CommitHold(d("3"))

		assert.True(t, b.Pending.Equal(d("0")))
		assert.True(t, b.Used.Equal(d("5")))
		// Available is unchanged by a commit.
		assert.True(t, b.Available().Equal(d("5")))
	})

	t.Run("floors pending at zero but still records usage", func(t *testing.T) {
		b := entry("10", "0", "1", "0")

		b.CommitHold(d("2"))

		assert.True(t, b.Pending.Equal(d("0")))
		assert.True(t, b.Used.Equal(d("2")))
	})
}

func TestValidDayAmount(t *testing.T) {
	valid := []string{"0.5", "1", "1.5", "14", "365"}
	for _, v := range valid {
		assert.True(t, ledger.ValidDayAmount(d(v)), v)
	}

	invalid := []string{"0", "-1", "-0.5", "0.25", "1.3", "2.75"}
	for _, v := range invalid {
		assert.False(t, ledger.ValidDayAmount(d(v)), v)
	}
}
