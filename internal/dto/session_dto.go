package dto

import "time"

type CreateSessionRequest struct {
	Title             string    `json:"title"`
	TutorName         string    `json:"tutorName"`
	TutorEmail        string    `json:"tutorEmail"`
	Description       string    `json:"description"`
	RegistrationStart time.Time `json:"registrationStart"`
	RegistrationEnd   time.Time `json:"registrationEnd"`
	ClassStart        time.Time `json:"classStart"`
	ClassEnd          time.Time `json:"classEnd"`
	Duration          string    `json:"duration"`
}

type ApproveSessionRequest struct {
	RegFee FlexFloat `json:"regFee"`
}

type RejectSessionRequest struct {
	RejectionReason string `json:"rejectionReason"`
	Feedback        string `json:"feedback"`
}

type BookSessionRequest struct {
	SessionID string `json:"sessionId"`
}

type NoteRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type MaterialRequest struct {
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageURL"`
	DriveLink string `json:"driveLink"`
}

type ReviewRequest struct {
	SessionID string `json:"sessionId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type AnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
