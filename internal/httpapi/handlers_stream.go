package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coder/websocket"

	"github.com/jigsaw-gen/jigsaw/internal/logger"
	"github.com/jigsaw-gen/jigsaw/internal/mask"
	"github.com/jigsaw-gen/jigsaw/internal/markov"
	"github.com/jigsaw-gen/jigsaw/internal/personal"
	"github.com/jigsaw-gen/jigsaw/internal/profile"
	"github.com/jigsaw-gen/jigsaw/internal/sink"
)

// streamRequest is the first message a client sends after the
// websocket upgrade, selecting which engine to run and its
// parameters — mirroring the teacher's internal/direct/server.go
// "read one envelope after Accept" pattern.
type streamRequest struct {
	Kind string `json:"kind"`

	Mask string `json:"mask,omitempty"`

	ModelPath string `json:"model_path,omitempty"`
	Count     int    `json:"count,omitempty"`
	MinLen    int    `json:"min_len,omitempty"`
	MaxLen    int    `json:"max_len,omitempty"`
	Seed      int64  `json:"seed,omitempty"`

	Profile *profile.Profile `json:"profile,omitempty"`

	Workers int `json:"workers,omitempty"`
}

// wsWriter adapts a websocket connection to io.Writer: every Write
// call becomes one text message.
type wsWriter struct {
	ctx  context.Context
	conn *websocket.Conn
}

func (w *wsWriter) Write(p []byte) (int, error) {
	if err := w.conn.Write(w.ctx, websocket.MessageText, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		logger.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	_, data, err := conn.Read(ctx)
	if err != nil {
		return
	}

	var req streamRequest
	if err := json.Unmarshal(data, &req); err != nil {
		conn.Close(websocket.StatusUnsupportedData, "malformed request")
		return
	}

	out := &wsWriter{ctx: ctx, conn: conn}
	snk := sink.New(out, 16)
	snk.Run()

	var genErr error
	switch req.Kind {
	case "mask":
		spec, err := mask.Parse(req.Mask, mask.DefaultCharsets())
		if err != nil {
			genErr = err
			break
		}
		genErr = mask.Enumerate(ctx, spec, snk, req.Workers, 0)
	case "markov":
		m, err := loadMarkovModel(req.ModelPath)
		if err != nil {
			genErr = err
			break
		}
		genErr = markov.Sample(ctx, m, req.Count, req.MinLen, req.MaxLen, req.Seed, req.Workers, snk, 0)
	case "personal":
		if req.Profile == nil {
			genErr = errMissingProfile
			break
		}
		genErr = personal.Generate(ctx, req.Profile, personal.Options{MinLen: req.MinLen, MaxLen: req.MaxLen}, snk)
	default:
		genErr = errUnknownKind
	}

	snk.Close()
	waitErr := snk.Wait()

	if genErr != nil && genErr != context.Canceled {
		logger.Warn("stream generate failed", "kind", req.Kind, "error", genErr)
		conn.Close(websocket.StatusInternalError, genErr.Error())
		return
	}
	if waitErr != nil && waitErr != context.Canceled {
		conn.Close(websocket.StatusInternalError, waitErr.Error())
		return
	}
	conn.Close(websocket.StatusNormalClosure, "done")
}
