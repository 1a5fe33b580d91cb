package models

// Cat ids are caller-chosen strings (the gallery client uses millisecond
// timestamps), never generated server-side.
type Cat struct {
	ID          string `json:"id"`
	Tag         string `json:"tag"`
	Img         string `json:"img"`
	Description string `json:"description"`
}

type ReplaceCatRequest struct {
	Tag         string `json:"tag"`
	Img         string `json:"img"`
	Description string `json:"description"`
}

// PatchCatRequest is the allow-list for partial updates. Unknown body fields
// are dropped by the parser, so the SET clause can never name a column that
// is not listed here.
type PatchCatRequest struct {
	Tag         *string `json:"tag"`
	Img         *string `json:"img"`
	Description *string `json:"description"`
}

func (r PatchCatRequest) Empty() bool {
	return r.Tag == nil && r.Img == nil && r.Description == nil
}
