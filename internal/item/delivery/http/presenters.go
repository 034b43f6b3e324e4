package http

import (
	"items-service/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Title:       r.Title,
		Description: r.Description,
	}
}

// ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
}

// --- Response DTOs ---

// itemResp is the read shape: the persisted fields plus the assigned id.
// It is written as the response body itself, unwrapped.
type itemResp struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
	}
}
