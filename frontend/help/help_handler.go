package help

import (
	"net/http"

	sessioncontext "sampark/frontend/shared/context"
	"sampark/frontend/shared/html"
	"sampark/frontend/shared/nav"
	"sampark/infrastructure/rbac"
)

// BuildPageData picks the questions shown to role.
func BuildPageData(role string) PageData {
	data := PageData{
		IsAdmin:      role == rbac.RoleAdmin,
		FAQs:         append([]FAQ(nil), commonFAQs...),
		SupportEmail: supportEmail,
	}
	if data.IsAdmin {
		data.FAQs = append(data.FAQs, adminFAQs...)
	}
	return data
}

// HelpPageQueryHandler serves GET /help.
func HelpPageQueryHandler(navigator nav.Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessioncontext.GetSessionFromContext(r.Context())
		top := nav.BuildTopNavData(session, navigator, 0)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := html.Layout("Help", top, HelpPage(BuildPageData(session.User.Role))).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render help page", http.StatusInternalServerError)
			return
		}
	}
}
