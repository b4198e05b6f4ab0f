package handler

import (
	"time"

	"github.com/forwardhq/forward/internal/model"
	"github.com/forwardhq/forward/internal/project"
)

// タイムスタンプはUTCのRFC 3339で返す。

// userResponse はユーザー情報のAPIレスポンス。
type userResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Bio        string    `json:"bio,omitempty"`
	Skills     []string  `json:"skills"`
	OpenToTeam bool      `json:"openToTeam"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserResponse(u *model.User) userResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Bio:        u.Bio,
		Skills:     skills,
		OpenToTeam: u.OpenToTeam,
		CreatedAt:  u.CreatedAt.UTC(),
		UpdatedAt:  u.UpdatedAt.UTC(),
	}
}

// projectResponse はプロジェクト情報のAPIレスポンス。
type projectResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	PointA            string    `json:"pointA"`
	PointB            string    `json:"pointB"`
	Status            string    `json:"status"`
	OpenToTeamMembers bool      `json:"openToTeamMembers"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	FounderID         string    `json:"founderId"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func toProjectResponse(p *model.Project) projectResponse {
	return projectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		PointA:            p.PointA,
		PointB:            p.PointB,
		Status:            string(p.Status),
		OpenToTeamMembers: p.OpenToTeamMembers,
		StartDate:         p.StartDate.UTC(),
		EndDate:           p.EndDate.UTC(),
		FounderID:         p.FounderID,
		CreatedAt:         p.CreatedAt.UTC(),
		UpdatedAt:         p.UpdatedAt.UTC(),
	}
}

// projectDetailResponse はプロジェクトと関連データを結合したAPIレスポンス。
type projectDetailResponse struct {
	projectResponse
	Founder      *userResponse         `json:"founder,omitempty"`
	DailyUpdates []dailyUpdateResponse `json:"dailyUpdates"`
	Comments     []commentResponse     `json:"comments"`
}

func toProjectDetailResponse(d *project.ProjectDetail) projectDetailResponse {
	resp := projectDetailResponse{
		projectResponse: toProjectResponse(d.Project),
		DailyUpdates:    make([]dailyUpdateResponse, 0, len(d.DailyUpdates)),
		Comments:        make([]commentResponse, 0, len(d.Comments)),
	}
	if d.Founder != nil {
		founder := toUserResponse(d.Founder)
		resp.Founder = &founder
	}
	for _, u := range d.DailyUpdates {
		resp.DailyUpdates = append(resp.DailyUpdates, toDailyUpdateResponse(u))
	}
	for _, c := range d.Comments {
		resp.Comments = append(resp.Comments, toCommentResponse(c))
	}
	return resp
}

// dailyUpdateResponse は日次進捗報告のAPIレスポンス。
type dailyUpdateResponse struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	UserID        string    `json:"userId"`
	Day           int       `json:"day"`
	Date          time.Time `json:"date"`
	WantToDoToday string    `json:"wantToDoToday"`
	WhatDid       string    `json:"whatDid"`
	Challenges    string    `json:"challenges"`
	NextSteps     string    `json:"nextSteps"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toDailyUpdateResponse(u *model.DailyUpdate) dailyUpdateResponse {
	return dailyUpdateResponse{
		ID:            u.ID,
		ProjectID:     u.ProjectID,
		UserID:        u.UserID,
		Day:           u.Day,
		Date:          u.Date.UTC(),
		WantToDoToday: u.WantToDoToday,
		WhatDid:       u.WhatDid,
		Challenges:    u.Challenges,
		NextSteps:     u.NextSteps,
		CreatedAt:     u.CreatedAt.UTC(),
		UpdatedAt:     u.UpdatedAt.UTC(),
	}
}

// commentResponse はコメントのAPIレスポンス。
type commentResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ProjectID string    `json:"projectId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCommentResponse(c *model.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		ProjectID: c.ProjectID,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.UTC(),
		UpdatedAt: c.UpdatedAt.UTC(),
	}
}

// slotResponse は時間枠のAPIレスポンス。
type slotResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsRecurring bool      `json:"isRecurring"`
	MaxBookings int       `json:"maxBookings"`
	Description string    `json:"description,omitempty"`
	MeetingLink string    `json:"meetingLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toSlotResponse(s *model.AvailabilitySlot) slotResponse {
	return slotResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       s.Title,
		StartTime:   s.StartTime.UTC(),
		EndTime:     s.EndTime.UTC(),
		IsRecurring: s.IsRecurring,
		MaxBookings: s.MaxBookings,
		Description: s.Description,
		MeetingLink: s.MeetingLink,
		CreatedAt:   s.CreatedAt.UTC(),
		UpdatedAt:   s.UpdatedAt.UTC(),
	}
}

// sessionResponse は予約セッションのAPIレスポンス。
type sessionResponse struct {
	ID                 string    `json:"id"`
	AvailabilitySlotID string    `json:"availabilitySlotId"`
	BookedByUserID     string    `json:"bookedByUserId"`
	ProjectID          string    `json:"projectId,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description,omitempty"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	MeetingLink        string    `json:"meetingLink"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func toSessionResponse(s *model.BookedSession) sessionResponse {
	return sessionResponse{
		ID:                 s.ID,
		AvailabilitySlotID: s.AvailabilitySlotID,
		BookedByUserID:     s.BookedByUserID,
		ProjectID:          s.ProjectID,
		Title:              s.Title,
		Description:        s.Description,
		StartTime:          s.StartTime.UTC(),
		EndTime:            s.EndTime.UTC(),
		MeetingLink:        s.MeetingLink,
		Status:             string(s.Status),
		CreatedAt:          s.CreatedAt.UTC(),
		UpdatedAt:          s.UpdatedAt.UTC(),
	}
}

// daySlotResponse はスプリント内1日分の進捗のAPIレスポンス。
type daySlotResponse struct {
	Day      int                  `json:"day"`
	Update   *dailyUpdateResponse `json:"update,omitempty"`
	IsToday  bool                 `json:"isToday"`
	IsPast   bool                 `json:"isPast"`
	IsFuture bool                 `json:"isFuture"`
}

// timelineResponse はスプリント進捗サマリーのAPIレスポンス。
type timelineResponse struct {
	CurrentDay    int               `json:"currentDay"`
	DaysRemaining int               `json:"daysRemaining"`
	Days          []daySlotResponse `json:"days"`
}

func toTimelineResponse(t *project.Timeline) timelineResponse {
	resp := timelineResponse{
		CurrentDay:    t.CurrentDay,
		DaysRemaining: t.DaysRemaining,
		Days:          make([]daySlotResponse, 0, len(t.Days)),
	}
	for _, d := range t.Days {
		slot := daySlotResponse{
			Day:      d.Day,
			IsToday:  d.IsToday,
			IsPast:   d.IsPast,
			IsFuture: d.IsFuture,
		}
		if d.Update != nil {
			update := toDailyUpdateResponse(d.Update)
			slot.Update = &update
		}
		resp.Days = append(resp.Days, slot)
	}
	return resp
}
