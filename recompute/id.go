package recompute

import (
	"strconv"

	"github.com/godruoyi/go-snowflake"
)

func RequestIDN2S(requestID uint64) string {
	return strconv.FormatUint(requestID, 36)
}

func RequestIDS2N(requestID string) (uint64, error) {
	return strconv.ParseUint(requestID, 36, 64)
}

func genRequestID() string {
	return RequestIDN2S(snowflake.ID())
}
