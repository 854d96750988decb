package cart

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enset/dashboard/internal/domain"
)

var (
	notebook = domain.Product{ID: 1, Name: "Notebook", Price: 9.99, Quantity: 50}
	pen      = domain.Product{ID: 2, Name: "Pen", Price: 1.25, Quantity: 200}
)

func TestAddSameProductTwice(t *testing.T) {
	c := New()
	c.Add(notebook)
	line := c.Add(notebook)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, line.Quantity)
	assert.InDelta(t, 19.98, line.TotalPrice, 1e-9)
	assert.InDelta(t, 19.98, c.Total(), 1e-9)
}

func TestAddDenormalizesProduct(t *testing.T) {
	c := New()
	line := c.Add(pen)

	assert.Equal(t, int64(2), line.ProductID)
	assert.Equal(t, "Pen", line.ProductName)
	assert.Equal(t, 1.25, line.UnitPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1.25, line.TotalPrice)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.Add(notebook)
	c.Add(pen)

	assert.True(t, c.SetQuantity(notebook.ID, 0))

	require.Equal(t, 1, c.Len())
	_, ok := c.Get(notebook.ID)
	assert.False(t, ok)
	assert.Equal(t, 1.25, c.Total())
}

func TestSetQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.Add(pen)
	c.SetQuantity(pen.ID, -3)
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
}

func TestSetQuantityRecomputesLineTotal(t *testing.T) {
	c := New()
	c.Add(pen)
	c.SetQuantity(pen.ID, 4)

	line, ok := c.Get(pen.ID)
	require.True(t, ok)
	assert.Equal(t, 4, line.Quantity)
	assert.Equal(t, 5.0, line.TotalPrice)
}

func TestSetQuantityUnknownProduct(t *testing.T) {
	c := New()
	assert.False(t, c.SetQuantity(99, 3))
	assert.True(t, c.IsEmpty())
}

func TestItemsPreserveInsertionOrderAndAreCopies(t *testing.T) {
	c := New()
	c.Add(pen)
	c.Add(notebook)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, pen.ID, items[0].ProductID)
	assert.Equal(t, notebook.ID, items[1].ProductID)

	items[0].Quantity = 100
	line, _ := c.Get(pen.ID)
	assert.Equal(t, 1, line.Quantity)
}

func TestTotalMatchesLinesForAnySequence(t *testing.T) {
	products := []domain.Product{
		notebook,
		pen,
		{ID: 3, Name: "Stapler", Price: 12.5, Quantity: 4},
		{ID: 4, Name: "Tape", Price: 0.3, Quantity: 30},
	}
	rng := rand.New(rand.NewSource(7))
	c := New()

	for step := 0; step < 500; step++ {
		p := products[rng.Intn(len(products))]
		if rng.Intn(3) == 0 {
			c.SetQuantity(p.ID, rng.Intn(6)-1)
		} else {
			c.Add(p)
		}

		var sum float64
		for _, line := range c.Items() {
			assert.Positive(t, line.Quantity)
			assert.Equal(t, float64(line.Quantity)*line.UnitPrice, line.TotalPrice)
			sum += line.TotalPrice
		}
		assert.Equal(t, sum, c.Total())
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(pen)
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Total())
}

func TestCloneIsIndependent(t *testing.T) {
	c := New()
	c.Add(pen)
	clone := c.Clone()

	c.Add(pen)
	c.Add(notebook)

	require.Equal(t, 1, clone.Len())
	line, _ := clone.Get(pen.ID)
	assert.Equal(t, 1, line.Quantity)
}

func TestSubtractKeepsLinesAddedLater(t *testing.T) {
	c := New()
	c.Add(pen)
	submitted := c.Clone()

	c.Add(pen)
	c.Add(notebook)
	c.Subtract(submitted)

	require.Equal(t, 2, c.Len())
	line, ok := c.Get(pen.ID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, 1.25, line.TotalPrice)
	_, ok = c.Get(notebook.ID)
	assert.True(t, ok)

	c.Subtract(c.Clone())
	assert.True(t, c.IsEmpty())
}
