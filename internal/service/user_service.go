package service

import (
	"errors"

	"Lee_Blog/internal/model"
	"Lee_Blog/internal/pkg"
	"Lee_Blog/internal/repository/mysql"
	"Lee_Blog/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	repo     *mysql.UserRepository
	sessions *redis.SessionRepository
	codes    *redis.ResetCodeRepository
	smtp     pkg.SMTPConfig
}

func NewUserService(db *gorm.DB, smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		repo:     &mysql.UserRepository{DB: db},
		sessions: &redis.SessionRepository{},
		codes:    &redis.ResetCodeRepository{},
		smtp:     smtp,
	}
}

func (s *UserService) Register(username, password, email string) error {
	if username == "" || password == "" || email == "" {
		return errors.New("username, password and email required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: username,
		Password: string(hash),
		Email:    email,
	}
	return s.repo.Create(user)
}

func (s *UserService) Login(login, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByLogin(login)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}

	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	// 把 token 写入 redis，同一用户只保留一个会话
	if err = s.sessions.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(userID uint64) error {
	return s.sessions.DeleteUserToken(userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword 登录态修改密码，改完强制重新登录
func (s *UserService) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}
	return s.Logout(userID)
}

// SendResetCode 发送重置密码验证码邮件
func (s *UserService) SendResetCode(email string) error {
	if _, err := s.repo.FindByEmail(email); err != nil {
		return err
	}

	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.codes.SaveCode(email, code); err != nil {
		return err
	}

	html := pkg.ResetCodeHTML(code, redis.DefaultResetCodeTTL)
	return pkg.SendEmail(s.smtp, email, "密码重置验证码", html)
}

// ResetPassword 用邮箱验证码重置密码，验证码一次性使用
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	val, err := s.codes.GetCode(email)
	if err != nil || val != code {
		return errors.New("verification failed")
	}
	if err = s.codes.DeleteCode(email); err != nil {
		return err
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(user, string(hash))
}
