package weighing

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	sessioncontext "pesagem/frontend/shared/context"
	"pesagem/infrastructure/audit"
	"pesagem/infrastructure/cache"
	"pesagem/infrastructure/config"
	"pesagem/infrastructure/session"
	weighinfra "pesagem/infrastructure/weighing"
	"pesagem/models"
)

const (
	PagePath       = "/"
	FieldsPath     = "/weighing/fields"
	AddWeightPath  = "/weighing/weights"
	EditWeightPath = "/weighing/weights/{index}/edit"
	DelWeightPath  = "/weighing/weights/{index}/delete"
	CommitEditPath = "/weighing/edit/commit"
	CancelEditPath = "/weighing/edit/cancel"
	SavePath       = "/weighing/save"
	PrintPath      = "/weighing/print"
	ExportPath     = "/weighing/exports/{token}"
)

const savedStatus = "Dados salvos com sucesso!"

func weightActionPath(index, action string) string {
	return "/weighing/weights/" + index + "/" + action
}

func exportURL(token string) string {
	return "/weighing/exports/" + url.PathEscape(token)
}

// WeighingPageQueryHandler renders the form for the caller's draft.
func WeighingPageQueryHandler(drafts *cache.DraftCache, exports *cache.ExportCache, business config.Business) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncontext.GetDraftTokenFromContext(r.Context())
		if !ok {
			http.Error(w, "missing draft token", http.StatusBadRequest)
			return
		}
		data := NewPageData(drafts.Get(token), business.Name)
		query := r.URL.Query()
		if msg := strings.TrimSpace(query.Get("error")); msg != "" {
			data.Message = msg
		}
		if query.Get("status") == "saved" {
			data.Status = savedStatus
			if dl := query.Get("download"); dl != "" {
				if _, ok := exports.Get(dl); ok {
					data.DownloadURL = exportURL(dl)
				}
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := WeighingPage(data).Render(r.Context(), w); err != nil {
			slog.Error("render weighing page failed", slog.Any("err", err))
			http.Error(w, "failed to render weighing page", http.StatusInternalServerError)
			return
		}
	}
}

// UpdateFieldsCommandHandler stores the typed form values.
func UpdateFieldsCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(*http.Request) (weighinfra.Event, error) {
		return nil, nil
	})
}

// AddWeightCommandHandler appends the weight typed in the add box.
func AddWeightCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(r *http.Request) (weighinfra.Event, error) {
		return weighinfra.AddWeight{Text: r.FormValue("new_weight")}, nil
	})
}

// BeginEditCommandHandler opens an edit session on one weight.
func BeginEditCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(r *http.Request) (weighinfra.Event, error) {
		index, err := parseWeightIndex(r)
		if err != nil {
			return nil, err
		}
		return weighinfra.BeginEdit{Index: index}, nil
	})
}

// RemoveWeightCommandHandler deletes one weight.
func RemoveWeightCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(r *http.Request) (weighinfra.Event, error) {
		index, err := parseWeightIndex(r)
		if err != nil {
			return nil, err
		}
		return weighinfra.RemoveWeight{Index: index}, nil
	})
}

// CommitEditCommandHandler saves the open edit session.
func CommitEditCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(r *http.Request) (weighinfra.Event, error) {
		return weighinfra.CommitEdit{Text: r.FormValue("edit_value")}, nil
	})
}

// CancelEditCommandHandler discards the open edit session.
func CancelEditCommandHandler(drafts *cache.DraftCache) http.HandlerFunc {
	return formCommandHandler(drafts, func(*http.Request) (weighinfra.Event, error) {
		return weighinfra.CancelEdit{}, nil
	})
}

// SaveCommandHandler validates the draft, renders the PDF receipt, resets
// the draft and redirects to the page, which starts the download.
func SaveCommandHandler(drafts *cache.DraftCache, exports *cache.ExportCache, business config.Business, saveDir string, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncontext.GetDraftTokenFromContext(r.Context())
		if !ok {
			http.Error(w, "missing draft token", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, "Formulário inválido.")
			return
		}

		var export models.Export
		var saved models.ClientRecord
		var renderErr error
		_, err := drafts.Update(token, func(d models.Draft) (models.Draft, error) {
			d = syncForm(d, r)
			if err := weighinfra.Validate(d.Record); err != nil {
				return d, err
			}
			receipt := BuildReceipt(d.Record, business)
			pdf, err := RenderReceiptPDF(receipt)
			if err != nil {
				renderErr = err
				return d, err
			}
			export = models.Export{FileName: receipt.FileName(), PDF: pdf}
			saved = d.Record
			return weighinfra.Apply(d, weighinfra.Reset{})
		})
		if renderErr != nil {
			slog.Error("render receipt pdf failed", slog.Any("err", renderErr))
			http.Error(w, "failed to build receipt pdf", http.StatusInternalServerError)
			return
		}
		if err != nil {
			redirectWithError(w, r, weighinfra.Message(err))
			return
		}

		if saveDir != "" {
			path, err := saveCopy(saveDir, export)
			if err != nil {
				slog.Error("save receipt copy failed", slog.String("dir", saveDir), slog.Any("err", err))
			} else {
				slog.Info("receipt saved", slog.String("file", path))
			}
		}

		downloadToken := session.NewToken(16)
		exports.Add(downloadToken, export)
		auditSvc.Write(r.Context(), audit.ActionReceiptSaved, saved, slog.String("file", export.FileName))
		http.Redirect(w, r, PagePath+"?status=saved&download="+url.QueryEscape(downloadToken), http.StatusSeeOther)
	}
}

// PrintCommandHandler validates the draft and renders the print page.
func PrintCommandHandler(drafts *cache.DraftCache, business config.Business, auditSvc *audit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncontext.GetDraftTokenFromContext(r.Context())
		if !ok {
			http.Error(w, "missing draft token", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, "Formulário inválido.")
			return
		}
		d, err := drafts.Update(token, func(d models.Draft) (models.Draft, error) {
			d = syncForm(d, r)
			return d, weighinfra.Validate(d.Record)
		})
		if err != nil {
			redirectWithError(w, r, weighinfra.Message(err))
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := PrintPage(BuildReceipt(d.Record, business)).Render(r.Context(), w); err != nil {
			slog.Error("render print page failed", slog.Any("err", err))
			http.Error(w, "failed to render print page", http.StatusInternalServerError)
			return
		}
		auditSvc.Write(r.Context(), audit.ActionReceiptPrinted, d.Record)
	}
}

// ExportDownloadQueryHandler serves a generated receipt PDF.
func ExportDownloadQueryHandler(exports *cache.ExportCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		export, ok := exports.Get(chi.URLParam(r, "token"))
		if !ok {
			http.Error(w, "export not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", contentDisposition(export.FileName))
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(export.PDF)
	}
}

// formCommandHandler syncs the posted form into the draft and then applies
// the event built from the request, if any. The form is kept even when the
// request names no valid event.
func formCommandHandler(drafts *cache.DraftCache, eventFor func(r *http.Request) (weighinfra.Event, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessioncontext.GetDraftTokenFromContext(r.Context())
		if !ok {
			http.Error(w, "missing draft token", http.StatusBadRequest)
			return
		}
		if err := r.ParseForm(); err != nil {
			redirectWithError(w, r, "Formulário inválido.")
			return
		}
		ev, evErr := eventFor(r)
		if _, err := drafts.Update(token, func(d models.Draft) (models.Draft, error) {
			d = syncForm(d, r)
			if evErr != nil {
				return d, evErr
			}
			if ev == nil {
				return d, nil
			}
			return weighinfra.Apply(d, ev)
		}); err != nil {
			redirectWithError(w, r, weighinfra.Message(err))
			return
		}
		http.Redirect(w, r, PagePath, http.StatusSeeOther)
	}
}

// syncForm copies the fields posted with every action into the draft. A
// field missing from the request keeps its stored value.
func syncForm(d models.Draft, r *http.Request) models.Draft {
	product := d.Record.Product
	if values, ok := r.PostForm["product"]; ok && len(values) > 0 {
		product, _ = models.ParseProductType(values[0])
	}
	d, _ = weighinfra.Apply(d, weighinfra.SetClient{
		Name:    postValue(r, "name", d.Record.Name),
		Phone:   postValue(r, "phone", d.Record.Phone),
		Product: product,
	})
	scratch := ""
	if d.Edit != nil {
		scratch = postValue(r, "edit_value", d.Edit.Scratch)
	}
	d, _ = weighinfra.Apply(d, weighinfra.KeepInput{
		NewWeight: postValue(r, "new_weight", d.NewWeight),
		Scratch:   scratch,
	})
	return d
}

func postValue(r *http.Request, key, fallback string) string {
	if values, ok := r.PostForm[key]; ok && len(values) > 0 {
		return values[0]
	}
	return fallback
}

func parseWeightIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return 0, weighinfra.ErrWeightIndex
	}
	return index, nil
}

func redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r, PagePath+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

// saveCopy writes the receipt into dir without overwriting earlier receipts
// for the same client.
func saveCopy(dir string, export models.Export) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}
	name := asciiFileName(export.FileName)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= 1000; i++ {
		candidate := name
		if i > 1 {
			candidate = fmt.Sprintf("%s (%d)%s", base, i, ext)
		}
		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create %s: %w", path, err)
		}
		if _, err := f.Write(export.PDF); err != nil {
			f.Close()
			return "", fmt.Errorf("write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}
