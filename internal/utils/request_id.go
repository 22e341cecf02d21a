package utils

import (
	"crypto/rand"
	"io"
	"strings"
)

const alphabet = "useandom-26T198340PX75pxJACKVERYMINDBUSHWOLF_GQZbfghjklqvwyzrict"

const RequestIDLength = 21

// GenerateID 生成 length 位 URL 安全的随机串，length 不为正时返回空串。
func GenerateID(length int) (string, error) {
	if length <= 0 {
		return "", nil
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.Grow(length)
	for _, b := range buf {
		builder.WriteByte(alphabet[b&63])
	}
	return builder.String(), nil
}

func GenerateRequestID() (string, error) {
	return GenerateID(RequestIDLength)
}
