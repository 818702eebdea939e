// seehuhn.de/go/vectorize - turn images into parametric curve equations
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package telegram answers chat commands by converting images into
// equations.
package telegram

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"seehuhn.de/go/vectorize"
	"seehuhn.de/go/vectorize/edges"
	"seehuhn.de/go/vectorize/internal/httpserver"
	"seehuhn.de/go/vectorize/internal/imagesrc"
	"seehuhn.de/go/vectorize/internal/store"
	"seehuhn.de/go/vectorize/internal/worker"
	"seehuhn.de/go/vectorize/potrace"
	"seehuhn.de/go/vectorize/preview"
)

// Bot is the part of *tgbotapi.BotAPI used by the router.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Router turns Telegram messages into conversion jobs.  Conversions run
// on Pool, results are saved through Sink and linked to the pages of
// Pages.
type Router struct {
	Bot   Bot
	Pool  *worker.Pool
	Sink  *store.Sink
	Pages *httpserver.Server
	HTTP  *http.Client

	DefaultWidth       int
	DefaultSensitivity float64
	MaxImageBytes      int64
}

// maxWidth limits the size of the traced image.
const maxWidth = 4000

// request holds the arguments of a conversion command.
type request struct {
	Color       string
	Width       int
	Sensitivity float64
}

const helpText = `Send me an image and I turn its outlines into parametric equations.

/desmos [color] [width] [sensitivity] - attach a photo or an image file
/url <url> [color] [width] [sensitivity] - convert the image at url

color is a color name or #rrggbb (default black), width is the width the
image is scaled to before tracing (default %d), sensitivity controls
how many edges are found (default %g).`

// HandleUpdate processes one update.  Messages without a command are
// ignored, unless they carry an image.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return
	}
	cmd, args := command(msg)
	if cmd == "" && hasImage(msg) {
		cmd = "desmos"
	}
	if cmd == "" {
		return
	}
	r.HandleCommand(ctx, msg, cmd, args)
}

// HandleCommand runs cmd with the given arguments and replies in the
// chat of msg.  It blocks until the conversion is done.
func (r *Router) HandleCommand(ctx context.Context, msg *tgbotapi.Message, cmd string, args []string) {
	cid := msg.Chat.ID
	switch cmd {
	case "start", "help":
		r.send(cid, fmt.Sprintf(helpText, r.DefaultWidth, r.DefaultSensitivity))
	case "desmos":
		fileID := imageFileID(msg)
		if fileID == "" {
			r.send(cid, "Please upload an image to render along with the command.")
			return
		}
		req, err := r.parseArgs(args)
		if err != nil {
			r.send(cid, "Error: "+err.Error()+". Try /help.")
			return
		}
		// The direct URL contains the bot token and must not be logged.
		addr, err := r.Bot.GetFileDirectURL(fileID)
		if err != nil {
			log.Printf("get file %s: %v", fileID, imagesrc.StripURL(err))
			r.send(cid, "Could not download the image.")
			return
		}
		r.render(ctx, msg, addr, "file "+fileID, req)
	case "url":
		if len(args) == 0 {
			r.send(cid, "Usage: /url <url> [color] [width] [sensitivity]")
			return
		}
		req, err := r.parseArgs(args[1:])
		if err != nil {
			r.send(cid, "Error: "+err.Error()+". Try /help.")
			return
		}
		r.render(ctx, msg, args[0], args[0], req)
	default:
		r.send(cid, "Unknown command, try /help.")
	}
}

// render runs the conversion of the image at addr on the worker pool and
// replies with the results.  Log messages refer to the image by label.
func (r *Router) render(ctx context.Context, msg *tgbotapi.Message, addr, label string, req request) {
	cid := msg.Chat.ID
	r.send(cid, "Rendering...")

	job := worker.Submit(ctx, r.Pool, func() (*vectorize.Result, error) {
		img, err := imagesrc.Load(ctx, r.HTTP, addr, req.Width, r.MaxImageBytes)
		if err != nil {
			return nil, err
		}
		return vectorize.Run(img, req.Sensitivity)
	})
	res, err := job.Wait(ctx)
	if err != nil {
		log.Printf("chat %d: %s: %v", cid, label, err)
		r.send(cid, userError(err))
		return
	}
	if len(res.Equations) == 0 {
		r.send(cid, "No edges found in the image. Try a higher sensitivity.")
		return
	}

	id := requesterID(msg)
	if err := r.Sink.Save(ctx, id, req.Color, res.Equations); err != nil {
		log.Printf("chat %d: %v", cid, err)
		r.send(cid, "Could not store the equations.")
		return
	}

	page := &bytes.Buffer{}
	if err := httpserver.WritePage(page, r.Pages.DataURL(id)); err != nil {
		log.Printf("chat %d: page: %v", cid, err)
	}
	txt := []byte(strings.Join(res.Equations, "\n"))

	img := preview.Render(res.Path, res.Edges.Width, res.Edges.Height, 1)
	pngData := &bytes.Buffer{}
	if err := png.Encode(pngData, img); err != nil {
		log.Printf("chat %d: preview: %v", cid, err)
	}

	files := []tgbotapi.Chattable{
		tgbotapi.NewDocument(cid, tgbotapi.FileBytes{Name: "render.html", Bytes: page.Bytes()}),
		tgbotapi.NewDocument(cid, tgbotapi.FileBytes{Name: "equations.txt", Bytes: txt}),
	}
	if pngData.Len() > 0 {
		photo := tgbotapi.NewPhoto(cid, tgbotapi.FileBytes{Name: "preview.png", Bytes: pngData.Bytes()})
		photo.Caption = fmt.Sprintf("%d equations, view them at %s", len(res.Equations), r.Pages.PageURL(id))
		files = append(files, photo)
	}
	for _, f := range files {
		if _, err := r.Bot.Send(f); err != nil {
			log.Printf("chat %d: send: %v", cid, err)
		}
	}
}

// parseArgs reads the optional arguments [color] [width] [sensitivity].
func (r *Router) parseArgs(args []string) (request, error) {
	req := request{
		Color:       "#000000",
		Width:       r.DefaultWidth,
		Sensitivity: r.DefaultSensitivity,
	}
	if len(args) > 3 {
		return req, errors.New("too many arguments")
	}
	if len(args) > 0 {
		c, err := store.ParseColor(args[0])
		if err != nil {
			return req, fmt.Errorf("unknown color %q", args[0])
		}
		req.Color = c
	}
	if len(args) > 1 {
		w, err := strconv.Atoi(args[1])
		if err != nil || w < 1 || w > maxWidth {
			return req, fmt.Errorf("invalid width %q, use a number between 1 and %d", args[1], maxWidth)
		}
		req.Width = w
	}
	if len(args) > 2 {
		s, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return req, fmt.Errorf("invalid sensitivity %q", args[2])
		}
		req.Sensitivity = s
	}
	return req, nil
}

func userError(err error) string {
	var imgErr *edges.InvalidImageError
	var traceErr *potrace.TraceError
	switch {
	case errors.Is(err, imagesrc.ErrTooLarge):
		return "The image is too large."
	case errors.As(err, &imgErr):
		return "The image is empty."
	case errors.As(err, &traceErr):
		return "Tracing the image failed."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Rendering was cancelled."
	default:
		return "Could not read the image."
	}
}

// command returns the command of a message and its arguments.  Photos and
// documents carry the command in the caption.
func command(msg *tgbotapi.Message) (string, []string) {
	if msg.IsCommand() {
		return msg.Command(), strings.Fields(msg.CommandArguments())
	}
	fields := strings.Fields(msg.Caption)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil
	}
	cmd := fields[0][1:]
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return cmd, fields[1:]
}

func hasImage(msg *tgbotapi.Message) bool {
	return imageFileID(msg) != ""
}

// imageFileID returns the file id of the largest attached photo, or of an
// attached image document.
func imageFileID(msg *tgbotapi.Message) string {
	if n := len(msg.Photo); n > 0 {
		return msg.Photo[n-1].FileID
	}
	if d := msg.Document; d != nil && (d.MimeType == "" || strings.HasPrefix(d.MimeType, "image/")) {
		return d.FileID
	}
	return ""
}

// requesterID is the key under which the equations of a message are stored.
func requesterID(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return strconv.FormatInt(msg.From.ID, 10)
	}
	return strconv.FormatInt(msg.Chat.ID, 10)
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("chat %d: send: %v", chatID, err)
	}
}
