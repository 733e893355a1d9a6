package domain

// ConversionRequest is one parsed user message asking to convert Amount
// from one currency into another.
type ConversionRequest struct {
	Amount       float64
	From         Code
	To           Code
	OriginalText string
}

// ConversionResult carries the computed amount together with the rates it
// was computed from. ResultAmount is unrounded; rounding happens only at
// presentation time.
type ConversionResult struct {
	Request      ConversionRequest
	ResultAmount float64
	FromRate     float64
	ToRate       float64
	AsOfDate     string
}
