package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// copyTo maps a view onto a response type by field name.
func copyTo[T any](src any) T {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		slog.Error("response mapping failed", "error", err.Error())
	}
	return dst
}
