package predict_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/predict"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArtifact = `{
  "features": ["total_sqft", "bhk", "bath"],
  "intercept": -10,
  "coefficients": [0.1, 5, 2.5]
}`

func TestLoadModel_ShippedArtifact(t *testing.T) {
	m, err := predict.LoadModel(filepath.Join("..", "..", "artifacts", "house_price_model.json"))
	require.NoError(t, err)

	got, err := m.Predict(predict.Features{TotalSqft: 1000, BHK: 2, Bath: 2})
	require.NoError(t, err)
	assert.Equal(t, "80.86 Lakhs INR", predict.FormatPrice(got))
}

func TestPredict_Deterministic(t *testing.T) {
	m, err := predict.ParseModel([]byte(testArtifact))
	require.NoError(t, err)

	f := predict.Features{TotalSqft: 1000, BHK: 2, Bath: 2}
	first, err := m.Predict(f)
	require.NoError(t, err)
	assert.InDelta(t, 105.0, first, 1e-9)

	for i := 0; i < 5; i++ {
		again, err := m.Predict(f)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseModel_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":           `{`,
		"wrong feature set":  `{"features":["sqft","bhk","bath"],"intercept":0,"coefficients":[1,1,1]}`,
		"short coefficients": `{"features":["total_sqft","bhk","bath"],"intercept":0,"coefficients":[1,1]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := predict.ParseModel([]byte(data))
			assert.ErrorIs(t, err, predict.ErrInvalidArtifact)
		})
	}
}

func TestLoadModel_MissingFile(t *testing.T) {
	_, err := predict.LoadModel(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "0.00 Lakhs INR", predict.FormatPrice(0))
	assert.Equal(t, "123.46 Lakhs INR", predict.FormatPrice(123.456))
	assert.Equal(t, "-4.10 Lakhs INR", predict.FormatPrice(-4.1))
}
