package mask

import (
	"fmt"
	"strings"

	"github.com/facemask/facemask/pkg/txt"
)

// Kind identifies a mask building method.
type Kind string

const (
	// KindComponents fills one convex hull per face component.
	KindComponents Kind = "components"
	// KindDflFull fills convex hulls of the jaw, nose ridge, and eye regions.
	KindDflFull Kind = "dfl_full"
	// KindFacehull fills a single convex hull of all landmarks.
	KindFacehull Kind = "facehull"
	// KindNone returns an all covering mask for full crop training.
	KindNone Kind = "none"
	// KindVgg300 segments 300px faces with the Nirkin VGG model.
	KindVgg300 Kind = "vgg_300"
	// KindVgg500 segments 500px faces with the Nirkin VGG model.
	KindVgg500 Kind = "vgg_500"
	// KindUnet256 segments 256px faces with the DFL U-Net model.
	KindUnet256 Kind = "unet_256"
)

// Kinds returns the available mask kinds in their canonical order.
func Kinds() []Kind {
	return []Kind{
		KindComponents,
		KindDflFull,
		KindFacehull,
		KindNone,
		KindVgg300,
		KindVgg500,
		KindUnet256,
	}
}

// KindNames returns the available mask kinds as strings.
func KindNames() (result []string) {
	for _, k := range Kinds() {
		result = append(result, string(k))
	}

	return result
}

// Default returns the default mask kind.
func Default() Kind {
	kinds := Kinds()

	for _, k := range kinds {
		if k == KindDflFull {
			return k
		}
	}

	return kinds[0]
}

// Parse returns the mask kind matching the given name,
// or the default kind for an empty name.
func Parse(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == "" {
		return Default(), nil
	}

	for _, k := range Kinds() {
		if string(k) == name {
			return k, nil
		}
	}

	return "", fmt.Errorf("mask: unknown kind %s", txt.Quote(name))
}

// IsHull reports whether the kind is built from landmark hulls.
func (k Kind) IsHull() bool {
	switch k {
	case KindComponents, KindDflFull, KindFacehull:
		return true
	default:
		return false
	}
}

// IsLearned reports whether the kind is built by a segmentation model.
func (k Kind) IsLearned() bool {
	switch k {
	case KindVgg300, KindVgg500, KindUnet256:
		return true
	default:
		return false
	}
}

// ModelName returns the segmentation model artifact name for learned kinds.
func (k Kind) ModelName() string {
	switch k {
	case KindVgg300:
		return "Nirkin_300_softmax_v1"
	case KindVgg500:
		return "Nirkin_500_softmax_v1"
	case KindUnet256:
		return "DFL_256_sigmoid_v1"
	default:
		return ""
	}
}

// String returns the kind as string.
func (k Kind) String() string {
	return string(k)
}
