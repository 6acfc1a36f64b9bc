package http

import (
	"time"

	"meeting-minutes/internal/confluence"
	"meeting-minutes/internal/model"
)

// --- Request DTOs ---

type listPagesReq struct {
	SpaceKey string `form:"-"`
	ParentID string `form:"parentId"`
	View     string `form:"view"`
}

func (r listPagesReq) toInput() confluence.ListPagesInput {
	return confluence.ListPagesInput{
		SpaceKey: r.SpaceKey,
		ParentID: r.ParentID,
		View:     confluence.View(r.View),
	}
}

type transcriptReq struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	Participants []string  `json:"participants"`
	KeyPoints    []string  `json:"keyPoints"`
	ActionItems  []string  `json:"actionItems"`
	CreatedAt    time.Time `json:"createdAt"`
}

type publishReq struct {
	Transcript *transcriptReq `json:"transcript"`
	SpaceKey   string         `json:"spaceKey"`
	ParentID   string         `json:"parentId"`
}

func (r publishReq) validate() error {
	if r.Transcript == nil {
		return confluence.ErrTranscriptRequired
	}
	if r.Transcript.Title == "" || r.Transcript.Content == "" {
		return confluence.ErrTitleContentEmpty
	}
	return nil
}

func (r publishReq) toInput() confluence.PublishInput {
	t := r.Transcript
	return confluence.PublishInput{
		Transcript: model.Transcript{
			ID:           t.ID,
			Title:        t.Title,
			Content:      t.Content,
			Summary:      t.Summary,
			Participants: t.Participants,
			KeyPoints:    t.KeyPoints,
			ActionItems:  t.ActionItems,
			CreatedAt:    t.CreatedAt,
		},
		SpaceKey: r.SpaceKey,
		ParentID: r.ParentID,
	}
}

// --- Response DTOs ---

type publishResp struct {
	PageID string `json:"pageId"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

func (h *handler) newPublishResp(p model.PublishedPage) publishResp {
	return publishResp{PageID: p.PageID, Title: p.Title, URL: p.URL}
}
