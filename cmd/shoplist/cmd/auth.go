package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

type checkUserView struct {
	Email   string `json:"email" yaml:"email"`
	Status  string `json:"status" yaml:"status"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func newCheckUserCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "check-user EMAIL",
		Short: "Check whether an email has an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := rt.app.Auth.CheckUserExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			view := checkUserView{
				Email:   args[0],
				Status:  string(res.Check.Status),
				Code:    res.Check.Code,
				Message: res.Message,
			}
			return rt.printer.print(view, func(tw *tabwriter.Writer) {
				fmt.Fprintln(tw, res.Message)
			})
		},
	}
}

func newRegisterCmd(rt *runtime) *cobra.Command {
	var (
		reg      model.Registration
		password string
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg.Password = password
			if !cmd.Flags().Changed("password") {
				secret, err := readSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
				reg.Password = secret
			}

			msg, err := rt.app.Auth.RegisterUser(cmd.Context(), reg)
			if err != nil {
				return err
			}
			return rt.printer.message(msg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&reg.Username, "username", "", "Username")
	f.StringVar(&reg.Email, "email", "", "Email address")
	f.StringVar(&reg.FirstName, "first-name", "", "First name")
	f.StringVar(&reg.LastName, "last-name", "", "Last name")
	f.StringVar(&reg.PhoneNumber, "phone", "", "Phone number")
	f.StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

type loginView struct {
	Message  string `json:"message" yaml:"message"`
	ID       string `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
}

func newLoginCmd(rt *runtime) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "login EMAIL",
		Short: "Sign in and keep the session on this device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("password") {
				secret, err := readSecret(cmd, "Password: ")
				if err != nil {
					return err
				}
				password = secret
			}

			res, err := rt.app.Auth.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			u := res.AuthData.User
			view := loginView{
				Message:  res.Message,
				ID:       u.ID,
				Username: u.Username,
				Email:    u.Email,
				Name:     u.FullName(),
			}
			return rt.printer.print(view, func(tw *tabwriter.Writer) {
				fmt.Fprintf(tw, "%s Welcome, %s.\n", res.Message, displayName(u))
			})
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := rt.app.Auth.Logout(cmd.Context())
			if !res.Success {
				return fmt.Errorf("%s: %w", res.Message, res.Err)
			}
			return rt.printer.message(res.Message)
		},
	}
}

type statusView struct {
	Authenticated bool       `json:"authenticated" yaml:"authenticated"`
	Username      string     `json:"username,omitempty" yaml:"username,omitempty"`
	Email         string     `json:"email,omitempty" yaml:"email,omitempty"`
	ExpiresAt     *time.Time `json:"access_token_expires_at,omitempty" yaml:"access_token_expires_at,omitempty"`
	Expired       bool       `json:"access_token_expired" yaml:"access_token_expired"`
}

func newStatusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := rt.app.Auth.CheckAuthState(cmd.Context())
			if err != nil {
				return err
			}

			view := statusView{Authenticated: state.Authenticated}
			if state.Authenticated {
				view.Username = state.AuthData.User.Username
				view.Email = state.AuthData.User.Email
				if token, ok := rt.app.Session.CurrentToken(cmd.Context()); ok {
					view.ExpiresAt = tokenExpiry(token)
				}
				if view.ExpiresAt != nil {
					view.Expired = !time.Now().Before(*view.ExpiresAt)
				}
			}

			return rt.printer.print(view, func(tw *tabwriter.Writer) {
				if !view.Authenticated {
					fmt.Fprintln(tw, "Not signed in.")
					return
				}
				fmt.Fprintf(tw, "User:\t%s\n", view.Username)
				fmt.Fprintf(tw, "Email:\t%s\n", view.Email)
				if view.ExpiresAt != nil {
					validity := "valid"
					if view.Expired {
						validity = "expired, renews on next request"
					}
					fmt.Fprintf(tw, "Access token:\t%s (%s)\n", view.ExpiresAt.Local().Format(time.RFC1123), validity)
				}
			})
		},
	}
}

// tokenExpiry reads the exp claim without verifying the signature; the
// client never holds the signing key.
func tokenExpiry(token string) *time.Time {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	exp := claims.ExpiresAt.Time
	return &exp
}

func displayName(u model.User) string {
	if name := u.FullName(); name != "" {
		return name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
