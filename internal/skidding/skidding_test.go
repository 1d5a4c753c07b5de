package skidding

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() Params {
	return Params{
		Increase:      1.05,
		Decrease:      0.95,
		Max:           2.5,
		TimeTillMax:   0.5,
		Visual:        1.25,
		TimeTillBonus: []float64{1.0, 3.0},
		BonusSpeed:    []float64{4.5, 6.5},
		BonusTime:     []float64{1.5, 2.5},
		BonusForce:    []float64{250, 350},
		HasSkidmarks:  true,
	}
}

func TestNew_CopiesParams(t *testing.T) {
	params := testParams()
	p, err := New(params)
	require.NoError(t, err)

	params.BonusSpeed[0] = 99
	assert.Equal(t, 4.5, p.Params().BonusSpeed[0])

	got := p.Params()
	got.BonusForce[1] = 0
	assert.Equal(t, 350.0, p.Params().BonusForce[1])
}

func TestValidate(t *testing.T) {
	params := testParams()
	params.BonusTime = params.BonusTime[:1]
	_, err := New(params)
	assert.ErrorIs(t, err, ErrBonusMismatch)

	params = testParams()
	params.TimeTillBonus = []float64{3, 1}
	_, err = New(params)
	assert.Error(t, err)

	_, err = New(Params{})
	assert.NoError(t, err, "no bonus levels is valid")

	params = testParams()
	params.Max = math.Inf(1)
	_, err = New(params)
	assert.ErrorIs(t, err, ErrNonFinite)

	params = testParams()
	params.BonusForce[0] = math.NaN()
	_, err = New(params)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestGetSet(t *testing.T) {
	params := testParams()
	for _, name := range FieldNames() {
		require.NoError(t, params.Set(name, 7.25), name)
		v, err := params.Get(name)
		require.NoError(t, err)
		assert.Equal(t, 7.25, v, name)
	}
	assert.Equal(t, 7.25, params.ReduceTurnMax)

	assert.ErrorIs(t, params.Set("bonusSpeed", 1), ErrUnknownField)
	_, err := params.Get("nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestBonusLevel(t *testing.T) {
	p, err := New(testParams())
	require.NoError(t, err)

	assert.Equal(t, -1, p.BonusLevel(0.5))
	assert.Equal(t, 0, p.BonusLevel(1.0))
	assert.Equal(t, 0, p.BonusLevel(2.9))
	assert.Equal(t, 1, p.BonusLevel(3.0))
	assert.Equal(t, 1, p.BonusLevel(10))
}

func TestClose_OnlyOnce(t *testing.T) {
	p, err := New(testParams())
	require.NoError(t, err)
	assert.False(t, p.Released())

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if p.Close() == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.True(t, p.Released())
	assert.ErrorIs(t, p.Close(), ErrReleased)
}
