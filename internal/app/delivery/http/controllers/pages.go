package controllers

import (
	"ehr-client/internal/pkg/constvars"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

// The gateway serves just enough HTML to log in and to show the outcome of a
// form submission. Layout is left to the real UI.
var pageTemplates = template.Must(template.New("layout").Parse(`{{define "layout"}}<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
{{if .Success}}<p class="success">{{.Success}}</p>{{end}}
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" action="{{.Action}}">
{{range .Fields}}<label>{{.}} <input name="{{.}}"{{if eq . "password"}} type="password"{{end}}></label><br>
{{end}}<button type="submit">{{.Submit}}</button>
</form>
{{if .ShowLogout}}<p><a href="/logout">Logout</a></p>{{end}}
</body>
</html>{{end}}`))

type page struct {
	Title      string
	Action     string
	Submit     string
	Fields     []string
	Success    string
	Error      string
	ShowLogout bool
}

var (
	loginPage = page{
		Title:  "Login",
		Action: constvars.PageLogin,
		Submit: "Login",
		Fields: []string{constvars.FormFieldUsername, constvars.FormFieldPassword},
	}
	patientPages = map[string]page{
		constvars.PagePatientCreate: {
			Title:  "Create patient",
			Action: constvars.PagePatientCreate,
			Submit: "Create",
			Fields: []string{
				constvars.FormFieldPatientID,
				constvars.FormFieldName,
				constvars.FormFieldBirthDate,
				constvars.FormFieldHeight,
				constvars.FormFieldWeight,
				constvars.FormFieldBloodType,
			},
			ShowLogout: true,
		},
		constvars.PagePatientUpdate: {
			Title:  "Update patient",
			Action: constvars.PagePatientUpdate,
			Submit: "Update",
			Fields: []string{
				constvars.FormFieldPatientID,
				constvars.FormFieldName,
				constvars.FormFieldBirthDate,
				constvars.FormFieldHeight,
				constvars.FormFieldWeight,
				constvars.FormFieldBloodType,
			},
			ShowLogout: true,
		},
		constvars.PagePatientDelete: {
			Title:      "Delete patient",
			Action:     constvars.PagePatientDelete,
			Submit:     "Delete",
			Fields:     []string{constvars.FormFieldPatientID},
			ShowLogout: true,
		},
	}
)

// renderPage writes the status before executing the template, so a failed
// execution can only be logged.
func renderPage(log *zap.Logger, w http.ResponseWriter, code int, p page) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(code)
	if err := pageTemplates.ExecuteTemplate(w, "layout", p); err != nil {
		log.Error("renderPage failed to execute template",
			zap.String("page", p.Title),
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Error(err),
		)
	}
}
