package service

import (
	"goblog/database"
	"goblog/database/model"
)

// UserService provides the user accessors. Rows returned here still carry
// the password hash; controllers project through model.User.Public before
// anything leaves the process.
type UserService struct{}

// GetAll retrieves every user together with the number of articles they
// have written.
func (s *UserService) GetAll() ([]*model.UserWithCount, error) {
	db := database.GetDB()
	var users []*model.UserWithCount
	err := db.Model(&model.User{}).
		Select("users.id, users.username, users.fname, users.lname, users.date_of_birth, users.bio, users.avatar, users.is_admin, " +
			"(SELECT COUNT(*) FROM articles a WHERE a.author_id = users.id) AS article_count").
		Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Get retrieves one user by id.
func (s *UserService) Get(id int) (*model.User, error) {
	db := database.GetDB()
	var user model.User
	if err := db.Take(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves one user by username.
func (s *UserService) GetByUsername(username string) (*model.User, error) {
	db := database.GetDB()
	var user model.User
	err := db.Where("username = ?", username).Take(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user. The caller must have hashed the password
// already.
func (s *UserService) Create(user *model.User) error {
	db := database.GetDB()
	return db.Create(user).Error
}

// UserUpdate carries the fields a caller may change. Password, when set,
// must already be hashed.
type UserUpdate struct {
	Username    *string
	Password    *string
	Fname       *string
	Lname       *string
	DateOfBirth *string
	Bio         *string
	Avatar      *string
	IsAdmin     *bool
}

// Update merges the supplied fields into the stored user under the same
// diff policy as articles: present and changed means written, an empty
// write set means no write at all.
func (s *UserService) Update(id int, upd UserUpdate) (*model.User, error) {
	db := database.GetDB()

	var current model.User
	if err := db.Take(&current, id).Error; err != nil {
		return nil, err
	}

	changes := map[string]any{}
	diffField(changes, "username", current.Username, upd.Username)
	diffField(changes, "password", current.Password, upd.Password)
	diffField(changes, "fname", current.Fname, upd.Fname)
	diffField(changes, "lname", current.Lname, upd.Lname)
	diffField(changes, "date_of_birth", current.DateOfBirth, upd.DateOfBirth)
	diffField(changes, "bio", current.Bio, upd.Bio)
	diffField(changes, "avatar", current.Avatar, upd.Avatar)
	diffBoolField(changes, "is_admin", current.IsAdmin, upd.IsAdmin)

	if len(changes) == 0 {
		return &current, nil
	}

	err := db.Model(&model.User{}).Where("id = ?", id).Updates(changes).Error
	if err != nil {
		return nil, err
	}

	var updated model.User
	if err := db.Take(&updated, id).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a user. Their articles, comments and likes are left in
// place; deleting an absent id is a no-op.
func (s *UserService) Delete(id int) error {
	db := database.GetDB()
	return db.Delete(&model.User{}, id).Error
}

// IsUsernameAvailable reports whether no user holds the given username.
func (s *UserService) IsUsernameAvailable(username string) (bool, error) {
	db := database.GetDB()
	var count int64
	err := db.Model(&model.User{}).Where("username = ?", username).Count(&count).Error
	return count == 0, err
}
