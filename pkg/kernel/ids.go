package kernel

import "github.com/google/uuid"

type UserID string

func NewUserID() UserID         { return UserID(uuid.New().String()) }
func (u UserID) String() string { return string(u) }
func (u UserID) IsEmpty() bool  { return string(u) == "" }

type AnalysisID string

func NewAnalysisID() AnalysisID    { return AnalysisID(uuid.New().String()) }
func (a AnalysisID) String() string { return string(a) }
func (a AnalysisID) IsEmpty() bool  { return string(a) == "" }

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }
