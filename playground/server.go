// Package playground serves Moon program evaluation over HTTP.
package playground

import (
	"encoding/json"
	"errors"
	"expvar"
	"log"
	"strings"
	"time"

	"github.com/tevino/abool/v2"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/expvarhandler"

	"moon-go/interpreter"
	"moon-go/parser"
)

var (
	runCalls     = expvar.NewInt("moonRuns")
	runFailures  = expvar.NewInt("moonRunFailures")
	runTimeouts  = expvar.NewInt("moonRunTimeouts")
	runBodyBytes = expvar.NewInt("moonRunBodyBytes")
)

const kDefaultTimeout = 5 * time.Second

// Response is the JSON body answered by POST /run.
type Response struct {
	Output   string   `json:"output"`
	Warnings []string `json:"warnings,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// Recorder receives every finished run, e.g. a journal.
type Recorder interface {
	Record(source string, runErr error) error
}

type Server struct {
	timeout_  time.Duration
	recorder_ Recorder
	server_   *fasthttp.Server
}

func NewServer(timeout time.Duration, recorder Recorder) *Server {
	ret := Server{}
	ret.timeout_ = timeout
	if ret.timeout_ <= 0 {
		ret.timeout_ = kDefaultTimeout
	}
	ret.recorder_ = recorder
	return &ret
}

// / Run evaluates source with a deadline. input supplies answers to ask.
func Run(source string, input []string, timeout time.Duration) (Response, error) {
	resp := Response{}
	program, lexErrs, err := parser.ParseSource(source)
	for _, e := range lexErrs {
		resp.Warnings = append(resp.Warnings, e.String())
	}
	if err != nil {
		resp.Error = err.Error()
		return resp, err
	}

	var out strings.Builder
	interp := interpreter.NewInterpreter(interpreter.WriterOutput(&out), interpreter.LinesInput(input))
	interrupt := abool.New()
	interp.SetInterrupt(interrupt)
	timer := time.AfterFunc(timeout, interrupt.Set)
	err = interp.ExecuteProgram(program)
	timer.Stop()

	resp.Output = out.String()
	if err != nil {
		resp.Error = err.Error()
	}
	return resp, err
}

func (this *Server) handleRun(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("use POST", fasthttp.StatusMethodNotAllowed)
		return
	}
	runCalls.Add(1)
	source := string(ctx.PostBody())
	runBodyBytes.Add(int64(len(source)))
	var input []string
	if header := ctx.Request.Header.Peek("X-Moon-Input"); len(header) > 0 {
		input = strings.Split(string(header), "\n")
	}

	resp, err := Run(source, input, this.timeout_)
	if err != nil {
		runFailures.Add(1)
		var f *interpreter.Fault
		if errors.As(err, &f) && f.Kind == interpreter.Interrupted {
			runTimeouts.Add(1)
		}
	}
	if this.recorder_ != nil {
		if rerr := this.recorder_.Record(source, err); rerr != nil {
			log.Printf("journal: %v", rerr)
		}
	}

	body, jerr := json.Marshal(resp)
	if jerr != nil {
		ctx.Error(jerr.Error(), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(body)
}

func (this *Server) Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/run":
		this.handleRun(ctx)
	case "/stats":
		expvarhandler.ExpvarHandler(ctx)
	default:
		ctx.Error("not found", fasthttp.StatusNotFound)
	}
}

func (this *Server) ListenAndServe(addr string) error {
	log.Printf("Starting HTTP server on %q", addr)
	this.server_ = &fasthttp.Server{
		Handler:      this.Handler,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}
	return this.server_.ListenAndServe(addr)
}

func (this *Server) Shutdown() error {
	if this.server_ == nil {
		return nil
	}
	return this.server_.Shutdown()
}
