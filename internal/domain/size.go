package domain

import "time"

type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	SizeXXL Size = "XXL"
)

var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL}

func (s Size) Valid() bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}

type BodyType string

const (
	BodyTypeSlim     BodyType = "Slim"
	BodyTypeAthletic BodyType = "Athletic"
	BodyTypeBulky    BodyType = "Bulky"
)

var BodyTypes = []BodyType{BodyTypeSlim, BodyTypeAthletic, BodyTypeBulky}

func (b BodyType) Valid() bool {
	for _, v := range BodyTypes {
		if v == b {
			return true
		}
	}
	return false
}

// SizeRule maps a rectangle in (height cm, weight kg) space to a size and body type.
// Bounds are inclusive. Rules are scanned by ascending Priority.
type SizeRule struct {
	Priority        int      `json:"priority" yaml:"priority"`
	MinHeight       float64  `json:"min_height" yaml:"min_height"`
	MaxHeight       float64  `json:"max_height" yaml:"max_height"`
	MinWeight       float64  `json:"min_weight" yaml:"min_weight"`
	MaxWeight       float64  `json:"max_weight" yaml:"max_weight"`
	RecommendedSize Size     `json:"recommended_size" yaml:"recommended_size"`
	BodyType        BodyType `json:"body_type" yaml:"body_type"`
}

func (r SizeRule) Contains(height, weight float64) bool {
	return height >= r.MinHeight && height <= r.MaxHeight &&
		weight >= r.MinWeight && weight <= r.MaxWeight
}

type SizeRecommendation struct {
	Size     Size     `json:"size"`
	BodyType BodyType `json:"bodyType"`
	FitTip   string   `json:"fitTip"`
	Matched  bool     `json:"matched"`
}

type EstimateRequest struct {
	Height float64 `json:"height" validate:"required,gt=0,lte=300"`
	Weight float64 `json:"weight" validate:"required,gt=0,lte=500"`
}

// SizeEstimate is one row of the estimation log.
type SizeEstimate struct {
	ID        int64     `json:"id"`
	RequestID string    `json:"request_id"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	BMI       float64   `json:"bmi"`
	Size      Size      `json:"size"`
	BodyType  BodyType  `json:"body_type"`
	Matched   bool      `json:"matched"`
	CreatedAt time.Time `json:"created_at"`
}
