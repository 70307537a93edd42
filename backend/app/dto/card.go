package dto

type CreateCardRequest struct {
	Chinese    string   `json:"chinese"`
	Pinyin     string   `json:"pinyin"`
	Vietnamese string   `json:"vietnamese"`
	Categories []string `json:"categories"`
}

// UpdateCardRequest uses pointers so an absent field and a field set to
// its zero value stay distinguishable during the partial merge.
type UpdateCardRequest struct {
	Chinese    *string   `json:"chinese"`
	Pinyin     *string   `json:"pinyin"`
	Vietnamese *string   `json:"vietnamese"`
	Categories *[]string `json:"categories"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
