package recompute

import "errors"

var (
	ErrSlowCompute = errors.New("slow compute")
)
