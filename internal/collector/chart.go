package collector

import (
	"encoding/json"
	"errors"
	"fmt"
)

// chartResponse is the chart-data JSON contract shared by the public
// Yahoo endpoint and hosted mirrors of it. Only
// chart.result[0].indicators.quote[0].close is consumed.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// decodeCloses extracts the closing-price array from a chart payload,
// dropping null entries while preserving order.
func decodeCloses(body []byte) ([]float64, error) {
	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, &SchemaError{Cause: err}
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: upstream error %s (%s)",
			ErrDataUnavailable, chart.Chart.Error.Code, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 {
		return nil, ErrDataUnavailable
	}
	quotes := chart.Chart.Result[0].Indicators.Quote
	if len(quotes) == 0 {
		return nil, &SchemaError{Cause: errors.New("chart.result[0].indicators.quote is empty")}
	}
	closes := make([]float64, 0, len(quotes[0].Close))
	for _, c := range quotes[0].Close {
		if c == nil {
			continue
		}
		closes = append(closes, *c)
	}
	if len(closes) == 0 {
		return nil, ErrDataUnavailable
	}
	return closes, nil
}
