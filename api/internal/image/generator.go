package image

import "context"

type Params struct {
	Prompt      string
	AspectRatio string // "1:1" | "16:9" | "9:16"
}

// Generator produces one illustration and reports its MIME type.
type Generator interface {
	Generate(ctx context.Context, p Params) ([]byte, string, error)
}
