package domain

import "strconv"

// Product is the result of multiplying two numbers.
type Product struct {
	Left  float64
	Right float64
	Value float64
}

// Multiply multiplies left by right.
func Multiply(left, right float64) Product {
	return Product{Left: left, Right: right, Value: left * right}
}

// String formats the product without trailing zeros.
func (p Product) String() string {
	return strconv.FormatFloat(p.Value, 'f', -1, 64)
}
