// Package cli implements the interactive administration console. It is a
// thin presentation layer: every action goes through the session manager,
// the registries, or the access decision, never around them.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"

	"github.com/identitykit/rbac-system/internal/core/domain"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/core/service"
)

// App drives the console loop over the injected core services.
type App struct {
	sessions ports.SessionManager
	identity ports.IdentityRegistry
	roles    ports.RoleRegistry
	in       *bufio.Scanner
	out      io.Writer
	validate *validator.Validate
}

func New(sessions ports.SessionManager, identity ports.IdentityRegistry, roles ports.RoleRegistry, in io.Reader, out io.Writer) *App {
	return &App{
		sessions: sessions,
		identity: identity,
		roles:    roles,
		in:       bufio.NewScanner(in),
		out:      out,
		validate: validator.New(),
	}
}

// Run loops between the authentication screen and the dashboard until the
// user quits, input ends, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var quit bool
		if _, ok := a.sessions.Current(); !ok {
			quit = a.authScreen(ctx)
		} else {
			quit = a.dashboard(ctx)
		}
		if quit {
			return nil
		}
	}
}

// ── Authentication screen ─────────────────────────────────────────────────

func (a *App) authScreen(ctx context.Context) (quit bool) {
	fmt.Fprintln(a.out, "\n== RBAC Console ==")
	fmt.Fprintln(a.out, "[1] login  [2] register  [3] saved logins  [q] quit")

	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		a.login(ctx)
	case "2":
		a.register(ctx)
	case "3":
		a.printSeedLogins()
	case "q":
		return true
	default:
		fmt.Fprintln(a.out, "unknown option")
	}
	return false
}

func (a *App) login(ctx context.Context) {
	username, ok := a.prompt("username")
	if !ok {
		return
	}
	password, ok := a.prompt("password")
	if !ok {
		return
	}
	if err := a.sessions.Login(ctx, username, password); err != nil {
		fmt.Fprintln(a.out, "invalid credentials")
	}
}

func (a *App) register(ctx context.Context) {
	form := registerForm{}
	var ok bool
	if form.Username, ok = a.prompt("username"); !ok {
		return
	}
	if form.Password, ok = a.prompt("password"); !ok {
		return
	}
	if form.Email, ok = a.prompt("email"); !ok {
		return
	}
	if form.Role, ok = a.prompt("role (user/editor)"); !ok {
		return
	}
	if err := a.validateForm(form); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	err := a.sessions.Register(ctx, form.Username, form.Password, form.Email, form.Role)
	switch {
	case errors.Is(err, domain.ErrUserExists):
		fmt.Fprintln(a.out, "registration failed: username already exists")
	case err != nil:
		fmt.Fprintf(a.out, "registration failed: %v\n", err)
	default:
		fmt.Fprintln(a.out, "registered, you can now log in")
	}
}

func (a *App) printSeedLogins() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tPASSWORD\tEMAIL\tROLE")
	for _, u := range service.SeedUsers() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Username, u.Password, u.Email, u.Role)
	}
	w.Flush()
}

// ── Dashboard ─────────────────────────────────────────────────────────────

func (a *App) dashboard(ctx context.Context) (quit bool) {
	user, ok := a.sessions.Current()
	if !ok {
		return false
	}
	decision := service.Decide(user.Role)

	fmt.Fprintf(a.out, "\n== Dashboard: %s (%s) ==\n", user.Username, user.Role)
	// resolved grants for the session's role; a role that no longer exists
	// grants nothing and renders no line
	if grants := a.roles.PermissionsFor(user.Role).GrantList(); grants != "" {
		fmt.Fprintf(a.out, "permissions: %s\n", grants)
	}
	if decision.Denied() {
		fmt.Fprintln(a.out, "Access denied: you do not have permission to access this dashboard.")
		fmt.Fprintln(a.out, "[l] logout  [q] quit")
	} else {
		if decision.ManageUsers {
			fmt.Fprintln(a.out, "[1] list users  [2] edit user  [3] delete user")
		}
		if decision.ManageRoles {
			fmt.Fprintln(a.out, "[4] list roles  [5] add role  [6] edit role  [7] delete role")
		}
		fmt.Fprintln(a.out, "[l] logout  [q] quit")
	}

	choice, ok := a.prompt("choice")
	if !ok {
		return true
	}
	switch choice {
	case "1":
		if decision.ManageUsers {
			a.listUsers()
			return false
		}
	case "2":
		if decision.ManageUsers {
			a.editUser(ctx)
			return false
		}
	case "3":
		if decision.ManageUsers {
			a.deleteUser(ctx)
			return false
		}
	case "4":
		if decision.ManageRoles {
			a.listRoles()
			return false
		}
	case "5":
		if decision.ManageRoles {
			a.addRole(ctx)
			return false
		}
	case "6":
		if decision.ManageRoles {
			a.editRole(ctx)
			return false
		}
	case "7":
		if decision.ManageRoles {
			a.deleteRole(ctx)
			return false
		}
	case "l":
		a.sessions.Logout()
		return false
	case "q":
		return true
	}
	fmt.Fprintln(a.out, "unknown option")
	return false
}

// ── User management ───────────────────────────────────────────────────────

func (a *App) listUsers() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range a.identity.Users() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, u.Role, u.Status)
	}
	w.Flush()
}

func (a *App) editUser(ctx context.Context) {
	id, ok := a.promptID("user id")
	if !ok {
		return
	}

	names := make([]string, 0, len(a.roles.Roles()))
	for _, r := range a.roles.Roles() {
		names = append(names, r.Name)
	}
	fmt.Fprintf(a.out, "available roles: %s\n", strings.Join(names, ", "))

	patch := ports.UserPatch{}
	if role, ok := a.prompt("role (empty to keep)"); ok && role != "" {
		patch.Role = &role
	}
	if status, ok := a.prompt("status (Active/Inactive, empty to keep)"); ok && status != "" {
		st := domain.UserStatus(status)
		patch.Status = &st
	}
	if err := a.identity.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "update failed: %v\n", err)
	}
}

func (a *App) deleteUser(ctx context.Context) {
	id, ok := a.promptID("user id")
	if !ok {
		return
	}
	err := a.identity.Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrProtectedEntity):
		fmt.Fprintln(a.out, "Cannot delete default users")
	case err != nil:
		fmt.Fprintf(a.out, "delete failed: %v\n", err)
	}
}

// ── Role management ───────────────────────────────────────────────────────

func (a *App) listRoles() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPERMISSIONS")
	for _, r := range a.roles.Roles() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Name, r.Permissions.GrantList())
	}
	w.Flush()
}

func (a *App) addRole(ctx context.Context) {
	form := roleForm{}
	var ok bool
	if form.Name, ok = a.prompt("role name"); !ok {
		return
	}
	if err := a.validateForm(form); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}

	perms, ok := a.promptPermissions()
	if !ok {
		return
	}
	role, err := a.roles.Create(ctx, form.Name, perms)
	if err != nil {
		fmt.Fprintf(a.out, "create failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "role %q created with id %d\n", role.Name, role.ID)
}

func (a *App) editRole(ctx context.Context) {
	id, ok := a.promptID("role id")
	if !ok {
		return
	}

	patch := ports.RolePatch{}
	if name, ok := a.prompt("name (empty to keep)"); ok && name != "" {
		patch.Name = &name
	}
	if change, ok := a.promptBool("change permissions?"); ok && change {
		// the edit workflow always passes the full permission set
		perms, ok := a.promptPermissions()
		if !ok {
			return
		}
		patch.Permissions = &perms
	}
	if err := a.roles.Update(ctx, id, patch); err != nil {
		fmt.Fprintf(a.out, "update failed: %v\n", err)
	}
}

func (a *App) deleteRole(ctx context.Context) {
	id, ok := a.promptID("role id")
	if !ok {
		return
	}
	err := a.roles.Delete(ctx, id)
	switch {
	case errors.Is(err, domain.ErrProtectedEntity):
		fmt.Fprintln(a.out, "Cannot delete default roles")
	case err != nil:
		fmt.Fprintf(a.out, "delete failed: %v\n", err)
	}
}

func (a *App) promptPermissions() (domain.Permissions, bool) {
	var perms domain.Permissions
	var ok bool
	if perms.Read, ok = a.promptBool("read?"); !ok {
		return perms, false
	}
	if perms.Write, ok = a.promptBool("write?"); !ok {
		return perms, false
	}
	if perms.Delete, ok = a.promptBool("delete?"); !ok {
		return perms, false
	}
	if perms.Admin, ok = a.promptBool("admin?"); !ok {
		return perms, false
	}
	return perms, true
}

// ── Prompt helpers ────────────────────────────────────────────────────────

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprintf(a.out, "%s: ", label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) promptID(label string) (int64, bool) {
	raw, ok := a.prompt(label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "invalid id")
		return 0, false
	}
	return id, true
}

func (a *App) promptBool(label string) (bool, bool) {
	raw, ok := a.prompt(label + " (y/n)")
	if !ok {
		return false, false
	}
	return raw == "y" || raw == "yes", true
}
