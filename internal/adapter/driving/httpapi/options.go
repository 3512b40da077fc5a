package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/application/usecase"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
)

// Nomes dos parâmetros de opção aceitos em query string ou formulário.
const (
	paramExchangeRate   = "exchange_rate"
	paramTaxRate        = "tax_rate"
	paramLambdaPayment  = "lambda_payment"
	paramFargatePayment = "fargate_payment"
)

// RequestOptions builds a summary request from the defaults overridden by the non-empty
// values get returns. Malformed numbers are reported as invalid options.
func RequestOptions(get func(name string) string, defaults *types.Config) (usecase.SummaryRequest, error) {
	cfg := *defaults

	if v := strings.TrimSpace(get(paramExchangeRate)); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return usecase.SummaryRequest{}, fmt.Errorf("%w: %s=%q is not a number", types.ErrInvalidOptions, paramExchangeRate, v)
		}
		cfg.ExchangeRate = rate
	}
	if v := strings.TrimSpace(get(paramTaxRate)); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return usecase.SummaryRequest{}, fmt.Errorf("%w: %s=%q is not a number", types.ErrInvalidOptions, paramTaxRate, v)
		}
		cfg.TaxRate = rate
	}
	if v := get(paramLambdaPayment); v != "" {
		cfg.LambdaPayment = v
	}
	if v := get(paramFargatePayment); v != "" {
		cfg.FargatePayment = v
	}

	return usecase.SummaryRequest{
		Options:        usecase.SummaryOptionsFromConfig(&cfg),
		ResolveAccount: cfg.ResolveAccount,
		Profile:        cfg.Profile,
	}, nil
}

// StatusForError maps a summary error to an HTTP status: 422 for a file the calculator
// cannot read, 400 for bad options, 500 otherwise.
func StatusForError(err error) int {
	switch {
	case types.IsStructural(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrInvalidOptions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
