package costcenter

import (
	"github.com/MrJamesThe3rd/obrafin/internal/costcenter"
)

type nodeResponse struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ParentID   *string        `json:"parent_id,omitempty"`
	Launchable bool           `json:"launchable"`
	Children   []nodeResponse `json:"children"`
}

type selectableResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type pathResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

type deleteResponse struct {
	Removed int `json:"removed"`
}

func toResponse(n costcenter.Node) nodeResponse {
	return nodeResponse{
		ID:         n.ID,
		Name:       n.Name,
		ParentID:   n.ParentID,
		Launchable: n.Payload.Launchable,
		Children:   toResponseList(n.Children),
	}
}

func toResponseList(nodes []costcenter.Node) []nodeResponse {
	resp := make([]nodeResponse, len(nodes))
	for i, n := range nodes {
		resp[i] = toResponse(n)
	}

	return resp
}
