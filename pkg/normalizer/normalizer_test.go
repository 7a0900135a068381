package normalizer

import (
	"errors"
	"math"
	"net/url"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/bmi-api/pkg/errors"
)

// requireBadRequest asserts err is an INVALID_REQUEST error with the given message.
func requireBadRequest(t *testing.T, err error, message string) *cnserrors.StructuredError {
	t.Helper()
	require.Error(t, err)

	var se *cnserrors.StructuredError
	require.True(t, errors.As(err, &se), "expected StructuredError, got %T", err)
	assert.Equal(t, cnserrors.ErrCodeInvalidRequest, se.Code)
	assert.Equal(t, message, se.Message)
	return se
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantWeight float64
		wantHeight float64
		wantUnits  Units
		wantErr    string
	}{
		{
			name:       "metric",
			query:      "weight_kg=70&height_cm=175",
			wantWeight: 70,
			wantHeight: 1.75,
			wantUnits:  UnitsMetric,
		},
		{
			name:       "metric takes precedence",
			query:      "weight_kg=70&height_cm=175&weight_lb=154&height_in=69",
			wantWeight: 70,
			wantHeight: 1.75,
			wantUnits:  UnitsMetric,
		},
		{
			name:       "incomplete metric falls back to imperial",
			query:      "weight_kg=70&weight_lb=154&height_in=69",
			wantWeight: 69.85,
			wantHeight: 1.75,
			wantUnits:  UnitsImperial,
		},
		{
			name:       "empty metric value falls back to imperial",
			query:      "weight_kg=&height_cm=175&weight_lb=154&height_in=69",
			wantWeight: 69.85,
			wantHeight: 1.75,
			wantUnits:  UnitsImperial,
		},
		{
			name:       "surrounding spaces are ignored",
			query:      "weight_kg=%2070%20&height_cm=175",
			wantWeight: 70,
			wantHeight: 1.75,
			wantUnits:  UnitsMetric,
		},
		{
			name:       "inclusive lower metric bounds",
			query:      "weight_kg=20&height_cm=100",
			wantWeight: 20,
			wantHeight: 1,
			wantUnits:  UnitsMetric,
		},
		{
			name:       "inclusive upper metric bounds",
			query:      "weight_kg=300&height_cm=250",
			wantWeight: 300,
			wantHeight: 2.5,
			wantUnits:  UnitsMetric,
		},
		{
			name:    "metric weight above max",
			query:   "weight_kg=500&height_cm=175",
			wantErr: "weight_kg must be between 20 and 300",
		},
		{
			name:    "metric weight below min",
			query:   "weight_kg=19.99&height_cm=175",
			wantErr: "weight_kg must be between 20 and 300",
		},
		{
			name:    "metric height out of range",
			query:   "weight_kg=70&height_cm=99",
			wantErr: "height_cm must be between 100 and 250",
		},
		{
			name:    "imperial weight out of range",
			query:   "weight_lb=43.9&height_in=69",
			wantErr: "weight_lb must be between 44 and 660",
		},
		{
			name:    "imperial height out of range",
			query:   "weight_lb=154&height_in=99",
			wantErr: "height_in must be between 39 and 98",
		},
		{
			name:    "non-numeric weight",
			query:   "weight_kg=abc&height_cm=175",
			wantErr: "weight_kg must be a number",
		},
		{
			name:    "non-numeric height",
			query:   "weight_kg=70&height_cm=tall",
			wantErr: "height_cm must be a number",
		},
		{
			name:    "infinity is not a number",
			query:   "weight_lb=Infinity&height_in=69",
			wantErr: "weight_lb must be a number",
		},
		{
			name:    "nan is not a number",
			query:   "weight_kg=NaN&height_cm=175",
			wantErr: "weight_kg must be a number",
		},
		{
			name:    "hex integer is not a number",
			query:   "weight_kg=0x46&height_cm=175",
			wantErr: "weight_kg must be a number",
		},
		{
			name:    "hex float is not a number",
			query:   "weight_kg=0x1p6&height_cm=175",
			wantErr: "weight_kg must be a number",
		},
		{
			name:    "signed hex is not a number",
			query:   "weight_lb=154&height_in=-0X45",
			wantErr: "height_in must be a number",
		},
		{
			name:    "neither pair",
			query:   "weight_kg=70&height_in=69",
			wantErr: "Provide either (weight_kg,height_cm) or (weight_lb,height_in)",
		},
		{
			name:    "empty query",
			query:   "",
			wantErr: "Provide either (weight_kg,height_cm) or (weight_lb,height_in)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			in, err := ParseQuery(values)
			if tt.wantErr != "" {
				requireBadRequest(t, err, tt.wantErr)
				assert.Nil(t, in)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWeight, in.WeightKg)
			assert.Equal(t, tt.wantHeight, in.HeightM)
			assert.Equal(t, tt.wantUnits, in.Echo.Units)
		})
	}
}

func TestParseQueryEchoesOriginalValues(t *testing.T) {
	t.Run("metric", func(t *testing.T) {
		in, err := ParseQuery(url.Values{"weight_kg": {"70.5"}, "height_cm": {"175"}})
		require.NoError(t, err)

		require.NotNil(t, in.Echo.WeightKg)
		require.NotNil(t, in.Echo.HeightCm)
		assert.Equal(t, 70.5, *in.Echo.WeightKg)
		assert.Equal(t, 175.0, *in.Echo.HeightCm)
		assert.Nil(t, in.Echo.WeightLb)
		assert.Nil(t, in.Echo.HeightIn)
	})

	t.Run("imperial keeps unconverted values", func(t *testing.T) {
		in, err := ParseQuery(url.Values{"weight_lb": {"154"}, "height_in": {"69"}})
		require.NoError(t, err)

		require.NotNil(t, in.Echo.WeightLb)
		require.NotNil(t, in.Echo.HeightIn)
		assert.Equal(t, 154.0, *in.Echo.WeightLb)
		assert.Equal(t, 69.0, *in.Echo.HeightIn)
		assert.Nil(t, in.Echo.WeightKg)
		assert.Equal(t, UnitsImperial, in.Echo.Units)
	})
}

func TestOutOfRangeContext(t *testing.T) {
	_, err := ParseQuery(url.Values{"weight_kg": {"500"}, "height_cm": {"175"}})
	se := requireBadRequest(t, err, "weight_kg must be between 20 and 300")

	assert.Equal(t, "weight_kg", se.Context["field"])
	assert.Equal(t, 20.0, se.Context["min"])
	assert.Equal(t, 300.0, se.Context["max"])
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		wantWeight  float64
		wantHeight  float64
		wantUnits   Units
		wantErr     string
	}{
		{
			name:        "metric json",
			body:        `{"units":"metric","weight":70,"height":175}`,
			contentType: "application/json",
			wantWeight:  70,
			wantHeight:  1.75,
			wantUnits:   UnitsMetric,
		},
		{
			name:        "imperial json",
			body:        `{"units":"imperial","weight":154,"height":69}`,
			contentType: "application/json; charset=utf-8",
			wantWeight:  69.85,
			wantHeight:  1.75,
			wantUnits:   UnitsImperial,
		},
		{
			name:       "missing content type defaults to json",
			body:       `{"units":"metric","weight":80.5,"height":180}`,
			wantWeight: 80.5,
			wantHeight: 1.8,
			wantUnits:  UnitsMetric,
		},
		{
			name:        "metric yaml",
			body:        "units: metric\nweight: 70\nheight: 175\n",
			contentType: "application/yaml",
			wantWeight:  70,
			wantHeight:  1.75,
			wantUnits:   UnitsMetric,
		},
		{
			name:        "imperial yaml with floats",
			body:        "units: imperial\nweight: 154.0\nheight: 69.0\n",
			contentType: "application/x-yaml",
			wantWeight:  69.85,
			wantHeight:  1.75,
			wantUnits:   UnitsImperial,
		},
		{
			name:        "invalid units",
			body:        `{"units":"kg","weight":70,"height":175}`,
			contentType: "application/json",
			wantErr:     `Missing/invalid "units": "metric" | "imperial"`,
		},
		{
			name:        "missing units",
			body:        `{"weight":70,"height":175}`,
			contentType: "application/json",
			wantErr:     `Missing/invalid "units": "metric" | "imperial"`,
		},
		{
			name:        "units must be a string",
			body:        `{"units":1,"weight":70,"height":175}`,
			contentType: "application/json",
			wantErr:     `Missing/invalid "units": "metric" | "imperial"`,
		},
		{
			name:        "non-object payload",
			body:        `[1,2,3]`,
			contentType: "application/json",
			wantErr:     `Missing/invalid "units": "metric" | "imperial"`,
		},
		{
			name:        "null payload",
			body:        `null`,
			contentType: "application/json",
			wantErr:     `Missing/invalid "units": "metric" | "imperial"`,
		},
		{
			name:        "string weight",
			body:        `{"units":"metric","weight":"70","height":175}`,
			contentType: "application/json",
			wantErr:     `"weight" and "height" must be numbers`,
		},
		{
			name:        "missing height",
			body:        `{"units":"metric","weight":70}`,
			contentType: "application/json",
			wantErr:     `"weight" and "height" must be numbers`,
		},
		{
			name:        "malformed json",
			body:        `{"units":"metric",`,
			contentType: "application/json",
			wantErr:     "Invalid JSON body",
		},
		{
			name:        "empty body",
			body:        "",
			contentType: "application/json",
			wantErr:     "Invalid JSON body",
		},
		{
			name:        "malformed yaml",
			body:        "units: [metric\n",
			contentType: "text/yaml",
			wantErr:     "Invalid YAML body",
		},
		{
			name:        "yaml nan is not finite",
			body:        "units: metric\nweight: .nan\nheight: 175\n",
			contentType: "application/yaml",
			wantErr:     "Inputs must be finite numbers",
		},
		{
			name:        "units dispatch ignores field names",
			body:        `{"units":"imperial","weight":70,"height":175}`,
			contentType: "application/json",
			wantErr:     "height_in must be between 39 and 98",
		},
		{
			name:        "metric out of range",
			body:        `{"units":"metric","weight":301,"height":175}`,
			contentType: "application/json",
			wantErr:     "weight_kg must be between 20 and 300",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := ParseBody(strings.NewReader(tt.body), tt.contentType)
			if tt.wantErr != "" {
				requireBadRequest(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantWeight, in.WeightKg)
			assert.Equal(t, tt.wantHeight, in.HeightM)
			assert.Equal(t, tt.wantUnits, in.Echo.Units)
		})
	}
}

func TestParseBodyEchoesImperialValues(t *testing.T) {
	in, err := ParseBody(strings.NewReader(`{"units":"imperial","weight":154,"height":69}`), "application/json")
	require.NoError(t, err)

	require.NotNil(t, in.Echo.WeightLb)
	require.NotNil(t, in.Echo.HeightIn)
	assert.Equal(t, 154.0, *in.Echo.WeightLb)
	assert.Equal(t, 69.0, *in.Echo.HeightIn)
	assert.Nil(t, in.Echo.WeightKg)
	assert.Nil(t, in.Echo.HeightCm)
}

func TestParseBodyReadFailure(t *testing.T) {
	cause := errors.New("connection reset by peer")

	_, err := ParseBody(iotest.ErrReader(cause), "application/json")
	requireBadRequest(t, err, "Invalid JSON body")
	assert.ErrorIs(t, err, cause)
}

func TestParseBodyNilReader(t *testing.T) {
	_, err := ParseBody(nil, "")
	requireBadRequest(t, err, "Invalid JSON body")
}

func TestNormalize(t *testing.T) {
	t.Run("non-finite values", func(t *testing.T) {
		_, err := Normalize(UnitsMetric, math.Inf(1), 175)
		requireBadRequest(t, err, "Inputs must be finite numbers")

		_, err = Normalize(UnitsImperial, 154, math.NaN())
		requireBadRequest(t, err, "Inputs must be finite numbers")
	})

	t.Run("unknown units", func(t *testing.T) {
		_, err := Normalize(Units("stone"), 10, 10)
		requireBadRequest(t, err, `Missing/invalid "units": "metric" | "imperial"`)
	})

	t.Run("imperial bounds inclusive", func(t *testing.T) {
		in, err := Normalize(UnitsImperial, 44, 39)
		require.NoError(t, err)
		assert.Equal(t, 19.96, in.WeightKg)
		assert.Equal(t, 0.99, in.HeightM)

		_, err = Normalize(UnitsImperial, 660, 98)
		require.NoError(t, err)
	})

	t.Run("metric values are not rounded", func(t *testing.T) {
		in, err := Normalize(UnitsMetric, 70.123, 175.5)
		require.NoError(t, err)
		assert.Equal(t, 70.123, in.WeightKg)
		assert.Equal(t, 175.5/100, in.HeightM)
	})
}

func TestLimitsFor(t *testing.T) {
	l, ok := LimitsFor(UnitsMetric)
	require.True(t, ok)
	assert.Equal(t, Bounds{Min: 20, Max: 300}, l.Weight)
	assert.Equal(t, FieldHeightCm, l.HeightField)

	l, ok = LimitsFor(UnitsImperial)
	require.True(t, ok)
	assert.Equal(t, Bounds{Min: 39, Max: 98}, l.Height)

	_, ok = LimitsFor(Units("kg"))
	assert.False(t, ok)

	assert.Len(t, AllLimits(), 2)
}
