package model

// User is a registered account. Password holds the bcrypt hash and is never
// serialized; use Public() before handing a user to a client.
type User struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"-" gorm:"not null"`
	Fname       string `json:"fname"`
	Lname       string `json:"lname"`
	DateOfBirth string `json:"dateOfBirth"`
	Bio         string `json:"bio"`
	Avatar      string `json:"avatar"`
	IsAdmin     bool   `json:"isAdmin"`
}

// UserPublic is the client-facing projection of a User.
type UserPublic struct {
	Id          int    `json:"id"`
	Username    string `json:"username"`
	Fname       string `json:"fname"`
	Lname       string `json:"lname"`
	DateOfBirth string `json:"dateOfBirth"`
	Bio         string `json:"bio"`
	Avatar      string `json:"avatar"`
	IsAdmin     bool   `json:"isAdmin"`
}

// Public strips the password hash from a user record.
func (u *User) Public() UserPublic {
	return UserPublic{
		Id:          u.Id,
		Username:    u.Username,
		Fname:       u.Fname,
		Lname:       u.Lname,
		DateOfBirth: u.DateOfBirth,
		Bio:         u.Bio,
		Avatar:      u.Avatar,
		IsAdmin:     u.IsAdmin,
	}
}

// UserWithCount is a user row joined with the number of articles they wrote.
type UserWithCount struct {
	UserPublic
	ArticleCount int `json:"articleCount"`
}

// Article is a published post. Date is assigned by the accessor at creation
// time, formatted in server local time.
type Article struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title    string `json:"title" gorm:"not null"`
	Content  string `json:"content" gorm:"not null"`
	Summary  string `json:"summary" gorm:"not null"`
	Date     string `json:"date"`
	Image    string `json:"image"`
	AuthorId int    `json:"author_id" gorm:"index;not null"`
}

// ArticleView is an article joined with its author's identity.
type ArticleView struct {
	Article
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Comment belongs to an article. ParentCommentId is nil for top-level
// comments and points at the thread root (or any ancestor) for replies.
type Comment struct {
	Id              int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Content         string `json:"content" gorm:"not null"`
	Date            string `json:"date"`
	UserId          int    `json:"user_id" gorm:"index;not null"`
	ArticleId       int    `json:"article_id" gorm:"index;not null"`
	ParentCommentId *int   `json:"parent_comment_id"`
}

// CommentView is a comment joined with its author's identity plus the
// control flags handed to authenticated readers.
type CommentView struct {
	Comment
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	CanDelete bool   `json:"canDelete,omitempty"`
	CanReply  bool   `json:"canReply,omitempty"`
}

// Like records that a user liked an article. The composite unique index is
// what makes duplicate likes a distinguishable conflict.
type Like struct {
	Id        int `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId    int `json:"user_id" gorm:"uniqueIndex:idx_likes_user_article;not null"`
	ArticleId int `json:"article_id" gorm:"uniqueIndex:idx_likes_user_article;not null"`
}
