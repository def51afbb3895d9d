package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rhyrak/go-attend/internal/csvio"
	"github.com/rhyrak/go-attend/internal/optimizer"
	"github.com/rhyrak/go-attend/pkg/model"
)

const (
	UploadDir    = "db"
	GeneratedDir = "db/generated"
	Delimiter    = ','
)

// OptimizeRequest is the JSON solve request: a timetable snapshot plus
// the per-run knobs. Priorities default to Medium per instructor.
type OptimizeRequest struct {
	Sessions      []*model.ScheduledSession `json:"sessions"`
	Profile       model.StudentProfile      `json:"profile"`
	Priorities    model.PriorityAssignment  `json:"priorities"`
	TargetPercent float64                   `json:"targetPercent"`
	Integer       bool                      `json:"integer"`
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := os.MkdirAll(GeneratedDir, os.ModePerm); err != nil {
		logger.Fatal("create storage dir", zap.Error(err))
	}

	catalog := model.DefaultCatalog()
	opt := optimizer.New(catalog, optimizer.NewDefaultConfiguration())

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/results", func(ctx *gin.Context) {
		files, err := os.ReadDir(GeneratedDir)
		if err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		allIDs := []string{}
		for _, file := range files {
			if file.IsDir() {
				continue
			}
			id, ok := strings.CutSuffix(file.Name(), "-result.json")
			if ok {
				allIDs = append(allIDs, id)
			}
		}
		ctx.JSON(http.StatusOK, gin.H{"resultIds": allIDs})
	})

	r.GET("/results/:id", func(ctx *gin.Context) {
		id := ctx.Param("id")
		content, err := os.ReadFile(GeneratedDir + "/" + id + "-result.json")
		if err != nil {
			ctx.Status(http.StatusNotFound)
			return
		}
		ctx.Data(http.StatusOK, "application/json", content)
	})

	r.POST("/optimize", func(ctx *gin.Context) {
		var req OptimizeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		tt := make(model.Timetable, len(req.Sessions))
		for _, s := range req.Sessions {
			if _, exists := tt[s.Key()]; exists {
				ctx.String(http.StatusBadRequest, "duplicate session at %s slot %d", s.Day, s.SlotID)
				return
			}
			tt.Put(s)
		}

		var res *model.OptimizationResult
		if req.Integer {
			res = opt.OptimizeInteger(tt, req.Profile, req.Priorities, req.TargetPercent)
		} else {
			res = opt.OptimizeFractional(tt, req.Profile, req.Priorities, req.TargetPercent)
		}
		if res == nil {
			logger.Info("no solution",
				zap.Int("sessions", len(tt)),
				zap.Float64("target", req.TargetPercent),
				zap.Bool("integer", req.Integer))
			ctx.JSON(http.StatusOK, gin.H{"solution": false})
			return
		}

		id := uuid.NewString()
		if err := storeResult(id, res); err != nil {
			logger.Error("store result", zap.String("id", id), zap.Error(err))
			ctx.Status(http.StatusInternalServerError)
			return
		}
		logger.Info("solved",
			zap.String("id", id),
			zap.Int("sessions", len(tt)),
			zap.Bool("integer", req.Integer),
			zap.Float64("totalValue", res.TotalValue),
			zap.Strings("relaxed", res.Relaxed))
		ctx.JSON(http.StatusOK, gin.H{"solution": true, "id": id, "result": res})
	})

	r.POST("/optimize/csv", func(ctx *gin.Context) {
		form, err := ctx.MultipartForm()
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}
		files := form.File["timetable"]
		if len(files) == 0 {
			ctx.String(http.StatusBadRequest, "missing timetable file")
			return
		}
		id := uuid.NewString()
		uploadPath := UploadDir + "/" + id + "-timetable.csv"
		if err := ctx.SaveUploadedFile(files[0], uploadPath); err != nil {
			ctx.Status(http.StatusInternalServerError)
			return
		}

		tt, err := csvio.LoadTimetable(uploadPath, Delimiter, catalog)
		if err != nil {
			ctx.String(http.StatusBadRequest, err.Error())
			return
		}

		target := formFloat(ctx, "target", 75.0)
		profile := model.StudentProfile{
			TravelTime:     formFloat(ctx, "travelTime", 2.0),
			TimeCommitment: formFloat(ctx, "timeCommitment", 0.5),
		}
		res := opt.OptimizeInteger(tt, profile, nil, target)
		if res == nil {
			ctx.JSON(http.StatusOK, gin.H{"solution": false})
			return
		}
		exportPath := GeneratedDir + "/" + id + "-result.csv"
		if err := csvio.ExportResult(res, catalog, exportPath); err != nil {
			logger.Error("export result", zap.String("id", id), zap.Error(err))
			ctx.Status(http.StatusInternalServerError)
			return
		}
		if err := storeResult(id, res); err != nil {
			logger.Error("store result", zap.String("id", id), zap.Error(err))
			ctx.Status(http.StatusInternalServerError)
			return
		}
		logger.Info("solved csv upload", zap.String("id", id), zap.Int("sessions", len(tt)))
		ctx.JSON(http.StatusOK, gin.H{"solution": true, "id": id})
	})

	r.Run(":3001")
}

func storeResult(id string, res *model.OptimizationResult) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return os.WriteFile(GeneratedDir+"/"+id+"-result.json", data, 0644)
}

func formFloat(ctx *gin.Context, key string, fallback float64) float64 {
	raw := ctx.PostForm(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
