package kernel_test

import (
	"testing"

	"github.com/vudinhquy04/NovaTechApp/internal/core/domain/model/kernel"
	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyConstruction(t *testing.T) {
	t.Run("zero value equals ZeroMoney", func(t *testing.T) {
		var m kernel.Money

		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
		assert.Equal(t, "0", m.String())
	})

	t.Run("NewMoneyFromInt", func(t *testing.T) {
		m := kernel.NewMoneyFromInt(250)

		assert.Equal(t, "250", m.String())
		assert.False(t, m.IsNegative())
	})

	t.Run("NewMoneyFromString parses decimals", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("19.99")

		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("NewMoneyFromString rejects garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("ten dollars")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("settlement arithmetic stays exact", func(t *testing.T) {
		// sub total 250, shipping 10, discount 5 => total 255
		subTotal := kernel.NewMoneyFromInt(100).MulInt(2).Add(kernel.NewMoneyFromInt(50).MulInt(1))
		total := subTotal.Add(kernel.NewMoneyFromInt(10)).Sub(kernel.NewMoneyFromInt(5))

		assert.Equal(t, "250", subTotal.String())
		assert.Equal(t, "255", total.String())
	})

	t.Run("no floating point drift on cents", func(t *testing.T) {
		price, err := kernel.NewMoneyFromString("0.10")
		require.NoError(t, err)

		sum := kernel.ZeroMoney()
		for range 3 {
			sum = sum.Add(price)
		}

		assert.True(t, sum.IsEqual(kernel.NewMoney(decimal.RequireFromString("0.30"))))
	})

	t.Run("subtraction can go negative", func(t *testing.T) {
		m := kernel.NewMoneyFromInt(5).Sub(kernel.NewMoneyFromInt(10))

		assert.True(t, m.IsNegative())
	})
}
