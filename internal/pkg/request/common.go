package request

// ByIDRequest is the common shape for endpoints taking an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ListParams carries the from/size window shared by every list endpoint.
// from is a zero-based offset; size, when present, must be positive.
type ListParams struct {
	From int  `form:"from,default=0" binding:"min=0"`
	Size *int `form:"size" binding:"omitempty,min=1"`
}
