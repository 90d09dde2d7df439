package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrProfileNotFound     = errors.New("no skill profile found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionEnded        = errors.New("session has ended")
	ErrSessionBusy         = errors.New("a response is already in progress for this session")
	ErrSessionTooShort     = errors.New("session too short to analyze")
	ErrNotPlacementSession = errors.New("not a placement session")
	ErrAnalysisUnparseable = errors.New("analysis response could not be parsed")
	ErrInvalidLevel        = errors.New("invalid level from analysis")
	ErrInvalidSessionType  = errors.New("invalid session type")
	ErrFileTooLarge        = errors.New("file exceeds size limit")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
