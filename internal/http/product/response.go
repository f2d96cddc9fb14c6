package product

import (
	"github.com/MrJamesThe3rd/obrafin/internal/product"
)

type nodeResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	ParentID *string        `json:"parent_id,omitempty"`
	Unit     string         `json:"unit,omitempty"`
	Category bool           `json:"category"`
	Children []nodeResponse `json:"children"`
}

type optionResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	Unit string `json:"unit"`
}

type pathResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type deleteResponse struct {
	Removed int `json:"removed"`
}

func toResponse(n product.Node) nodeResponse {
	return nodeResponse{
		ID:       n.ID,
		Name:     n.Name,
		ParentID: n.ParentID,
		Unit:     n.Payload.Unit,
		Category: n.Payload.IsCategory(),
		Children: toResponseList(n.Children),
	}
}

func toResponseList(nodes []product.Node) []nodeResponse {
	resp := make([]nodeResponse, len(nodes))
	for i, n := range nodes {
		resp[i] = toResponse(n)
	}

	return resp
}
