package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elouannasse/youshop-client/internal/domain"
)

type authEnvelope struct {
	AccessToken string  `json:"accessToken"`
	User        userDTO `json:"user"`
}

type userEnvelope struct {
	Success bool    `json:"success"`
	Data    userDTO `json:"data"`
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Login exchanges credentials for a session token; the token is kept
// on the client and injected into every subsequent request.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}
	if password == "" {
		return domain.User{}, fmt.Errorf("password is empty")
	}

	body := map[string]string{"email": email, "password": password}

	var env authEnvelope
	if err := c.send(ctx, http.MethodPost, "/auth/login", body, &env, nil); err != nil {
		return domain.User{}, err
	}

	c.SetToken(env.AccessToken)
	return toDomainUser(env.User), nil
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (domain.User, error) {
	if input.Email == "" {
		return domain.User{}, fmt.Errorf("email is empty")
	}
	if input.Password == "" {
		return domain.User{}, fmt.Errorf("password is empty")
	}

	var env authEnvelope
	if err := c.send(ctx, http.MethodPost, "/auth/register", input, &env, nil); err != nil {
		return domain.User{}, err
	}

	c.SetToken(env.AccessToken)
	return toDomainUser(env.User), nil
}

// Logout invalidates the session server-side. The local token is
// dropped even when the call fails; the session is gone either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.send(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	c.SetToken("")
	return err
}

func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var env userEnvelope
	if err := c.get(ctx, "/auth/me", nil, &env); err != nil {
		return domain.User{}, err
	}
	return toDomainUser(env.Data), nil
}

func (c *Client) RefreshToken(ctx context.Context) error {
	var env authEnvelope
	if err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, &env, nil); err != nil {
		return err
	}

	c.SetToken(env.AccessToken)
	return nil
}

func (c *Client) UpdateProfile(ctx context.Context, user domain.User) (domain.User, error) {
	body := userDTO{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Avatar:    user.AvatarURL,
	}

	var env userEnvelope
	if err := c.send(ctx, http.MethodPut, "/auth/profile", body, &env, nil); err != nil {
		return domain.User{}, err
	}
	return toDomainUser(env.Data), nil
}

func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" {
		return fmt.Errorf("currentPassword is empty")
	}
	if newPassword == "" {
		return fmt.Errorf("newPassword is empty")
	}

	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return c.send(ctx, http.MethodPost, "/auth/change-password", body, nil, nil)
}
