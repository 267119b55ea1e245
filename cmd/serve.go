package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/SENAndrhevn23/FNF-Tools/chart"
	"github.com/SENAndrhevn23/FNF-Tools/model"
	"github.com/SENAndrhevn23/FNF-Tools/ops"
)

var flagAddr string

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve chart info and operations over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func handleInfo(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "missing path query parameter")
		return
	}
	doc, err := chart.Load(path)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.ChartInfoResponse{
		Sections:   len(doc.Sections),
		Notes:      doc.NoteCount(),
		BPM:        doc.BPM(),
		DurationMs: chart.Duration(doc.Sections, doc.BPM()),
	})
}

func handleMultiply(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}
	var input model.MultiplyRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "could not unmarshal request body: "+err.Error())
		return
	}

	// No confirmation prompt over HTTP: past the ceiling means canceled.
	cfg := baseConfig()
	cfg.Confirm = nil
	res, err := ops.Multiply(cfg, input.Path, input.Multiplier, input.Splits)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.OperationResponse{
		Outputs:  res.Outputs,
		Sections: res.Sections,
		Notes:    res.Notes,
		Canceled: res.Canceled,
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/info", handleInfo).Methods("GET")
	router.HandleFunc("/multiply", handleMultiply).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(flagAddr, handler))
}
