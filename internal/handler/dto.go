package handler

type ReferenceResponse struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Link  string `json:"link"`
}

type BriefResponse struct {
	RunID          string              `json:"run_id"`
	Date           string              `json:"date"`
	Origin         string              `json:"origin"`
	Text           string              `json:"text"`
	References     []ReferenceResponse `json:"references"`
	ItemCount      int                 `json:"item_count"`
	FallbackReason string              `json:"fallback_reason,omitempty"`
	ModelUsed      string              `json:"model_used,omitempty"`
}

type EvidenceRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type NormalizeRequest struct {
	Text  string            `json:"text"`
	Items []EvidenceRequest `json:"items"`
}

type NormalizeResponse struct {
	Text       string              `json:"text"`
	References []ReferenceResponse `json:"references"`
}
