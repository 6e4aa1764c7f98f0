package norgesbank

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/karashiiro/exchange-rate-mcp/types"
)

// baseCurrencyDimension is the SDMX dimension ID carrying the currency axis
const baseCurrencyDimension = "BASE_CUR"

// sdmxResponse is the SDMX-JSON shape returned by the Norges Bank EXR dataset
type sdmxResponse struct {
	Data struct {
		DataSets []struct {
			Series map[string]sdmxSeries `json:"series"`
		} `json:"dataSets"`

		Structure struct {
			Dimensions struct {
				Series []sdmxDimension `json:"series"`
			} `json:"dimensions"`
		} `json:"structure"`
	} `json:"data"`
}

type sdmxSeries struct {
	Observations map[string][]string `json:"observations"`
}

type sdmxDimension struct {
	ID     string `json:"id"`
	Values []struct {
		ID string `json:"id"`
	} `json:"values"`
}

// seriesKey is a decoded SDMX series key. Raw keys are colon-delimited
// positional indices into the structure's series dimensions, e.g. "0:2:0:0".
// Position 1 indexes the BASE_CUR axis
type seriesKey []int

// parseSeriesKey decodes the raw colon-delimited series key
func parseSeriesKey(raw string) (seriesKey, error) {
	segments := strings.Split(raw, ":")
	key := make(seriesKey, 0, len(segments))

	for _, segment := range segments {
		index, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid series key %q", ErrMalformedResponse, raw)
		}

		key = append(key, index)
	}

	return key, nil
}

// currencyIndex returns the position of this series on the currency axis
func (k seriesKey) currencyIndex() (int, error) {
	if len(k) < 2 {
		return 0, fmt.Errorf("%w: series key has no currency segment", ErrMalformedResponse)
	}

	return k[1], nil
}

// currencyAxis extracts the ordered currency list from the dimension
// metadata. Series keys reference currencies by position on this axis,
// in whatever order the service placed them
func currencyAxis(resp *sdmxResponse) ([]types.Currency, error) {
	for _, dimension := range resp.Data.Structure.Dimensions.Series {
		if dimension.ID != baseCurrencyDimension {
			continue
		}

		axis := make([]types.Currency, 0, len(dimension.Values))
		for _, value := range dimension.Values {
			axis = append(axis, types.Currency(value.ID))
		}

		return axis, nil
	}

	return nil, fmt.Errorf("%w: missing %s dimension", ErrMalformedResponse, baseCurrencyDimension)
}

// parseReferenceRates decodes the response into raw (unnormalized) per-NOK
// quotes, keyed by currency code resolved through the currency axis
func parseReferenceRates(resp *sdmxResponse) (types.Rates, error) {
	if len(resp.Data.DataSets) == 0 {
		return nil, fmt.Errorf("%w: missing data sets", ErrMalformedResponse)
	}

	series := resp.Data.DataSets[0].Series
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: missing series data", ErrMalformedResponse)
	}

	axis, err := currencyAxis(resp)
	if err != nil {
		return nil, err
	}

	rates := make(types.Rates, len(series))

	for rawKey, s := range series {
		key, err := parseSeriesKey(rawKey)
		if err != nil {
			return nil, err
		}

		index, err := key.currencyIndex()
		if err != nil {
			return nil, err
		}

		if index < 0 || index >= len(axis) {
			return nil, fmt.Errorf(
				"%w: series key %q outside currency axis",
				ErrMalformedResponse,
				rawKey,
			)
		}

		observation, err := firstObservation(s.Observations)
		if err != nil {
			return nil, err
		}

		rate, err := strconv.ParseFloat(observation, 64)
		if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf(
				"%w: observation %q for %s",
				ErrInvalidRateValue,
				observation,
				axis[index],
			)
		}

		rates[axis[index]] = rate
	}

	return rates, nil
}

// firstObservation selects the earliest-indexed observation of a series.
// With lastNObservations=1 there is exactly one
func firstObservation(observations map[string][]string) (string, error) {
	if len(observations) == 0 {
		return "", fmt.Errorf("%w: series has no observations", ErrMalformedResponse)
	}

	indices := make([]int, 0, len(observations))

	for raw := range observations {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return "", fmt.Errorf("%w: invalid observation index %q", ErrMalformedResponse, raw)
		}

		indices = append(indices, index)
	}

	sort.Ints(indices)

	values := observations[strconv.Itoa(indices[0])]
	if len(values) == 0 {
		return "", fmt.Errorf("%w: empty observation", ErrMalformedResponse)
	}

	return values[0], nil
}
