package main

import (
	"context"
	"time"

	"rodizio/internal/api"
	"rodizio/internal/config"
	"rodizio/internal/pg"
	"rodizio/internal/reference"
	"rodizio/internal/scheme"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load() // .env рядом с бинарём, если есть

	cfg := config.LoadWithPath("config.json")

	lvl, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = logger.InfoLevel
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component", "category"},
	})

	// 1. Загружаем документ с ограничениями циркуляции
	doc, err := scheme.LoadDocument(cfg.DataFile)
	if err != nil {
		logger.Fatalf("Ошибка загрузки документа: %v", err)
	}
	logger.Infof("Загружено схем: %d", len(doc))

	// 2. Загружаем справочники
	catalogs, err := reference.LoadCatalogs(cfg.CatalogsDir)
	if err != nil {
		logger.Fatalf("Ошибка загрузки справочников: %v", err)
	}
	logger.Infof("Загружено справочников: %d", len(catalogs))

	// 3. Валидация до старта — негодный документ наружу не отдаём
	if errs := api.ValidateDocument(doc, catalogs); len(errs) > 0 {
		for _, e := range errs {
			logger.Errorf("%s: %s [%s]", e.Field, e.Message, e.Code)
		}
		logger.Fatalf("Документ не прошёл валидацию: %d ошибок", len(errs))
	}

	// 4. Инициализируем in-memory хранилище
	storage := api.NewStorage(doc, catalogs, cfg.DataFile, cfg.CatalogsDir)

	// 5. Опционально — снапшот документа в Postgres
	if cfg.DBURL != "" {
		db, err := pg.Open(cfg.DBURL)
		if err != nil {
			logger.Fatalf("Ошибка подключения к Postgres: %v", err)
		}
		if cfg.AutoMigrate {
			if err := pg.ApplyDDL(db, pg.SnapshotDDL()); err != nil {
				logger.Fatalf("Ошибка миграции: %v", err)
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		id, err := pg.SaveSnapshot(ctx, db, doc, cfg.DataFile)
		cancel()
		if err != nil {
			logger.Fatalf("Ошибка записи снапшота: %v", err)
		}
		logger.Infof("Снапшот документа сохранён: %s", id)
		_ = db.Close()
	}

	// 6. Опционально — слежение за файлом документа
	if cfg.Watch {
		if err := api.WatchDocument(storage, make(chan struct{})); err != nil {
			logger.Warnf("Watcher не запустился: %v", err)
		}
	}

	// 7. Запускаем REST API сервер
	logger.Infof("Стартуем сервер на :%s...", cfg.Port)
	api.RunServer(":"+cfg.Port, storage)
}
