package http

import (
	"pesagem/frontend/weighing"

	"github.com/go-chi/chi/v5"
)

// RegisterWeighingRoutes registers the weighing form and its actions.
func (s *Server) RegisterWeighingRoutes(r chi.Router) chi.Router {
	r.Get(weighing.PagePath, weighing.WeighingPageQueryHandler(s.Drafts, s.Exports, s.Config.Business))
	r.Post(weighing.FieldsPath, weighing.UpdateFieldsCommandHandler(s.Drafts))

	r.Post(weighing.AddWeightPath, weighing.AddWeightCommandHandler(s.Drafts))
	r.Post(weighing.EditWeightPath, weighing.BeginEditCommandHandler(s.Drafts))
	r.Post(weighing.DelWeightPath, weighing.RemoveWeightCommandHandler(s.Drafts))
	r.Post(weighing.CommitEditPath, weighing.CommitEditCommandHandler(s.Drafts))
	r.Post(weighing.CancelEditPath, weighing.CancelEditCommandHandler(s.Drafts))

	r.Post(weighing.SavePath, weighing.SaveCommandHandler(s.Drafts, s.Exports, s.Config.Business, s.Config.SaveDir, s.Audit))
	r.Post(weighing.PrintPath, weighing.PrintCommandHandler(s.Drafts, s.Config.Business, s.Audit))
	r.Get(weighing.ExportPath, weighing.ExportDownloadQueryHandler(s.Exports))
	return r
}
