package app

import (
	"net/http"

	"github.com/screenline/cinebook/api"
)

// GetOpenAPIDocument serves the API description the router is generated from.
func (app *Application) GetOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	swagger, err := api.GetSwagger()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, swagger, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
