package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "prestago-backend/internal/adapter/http"
	idemp "prestago-backend/internal/adapter/middleware"
	"prestago-backend/internal/adapter/repository/mysql"
	"prestago-backend/internal/config"
	"prestago-backend/internal/infrastructure/cache"
	"prestago-backend/internal/infrastructure/db"
	ucassignment "prestago-backend/internal/usecase/assignment"
	ucledger "prestago-backend/internal/usecase/ledger"
	ucpayment "prestago-backend/internal/usecase/payment"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.WithError(err).Fatal("mysql connect failed")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connect failed")
	}

	dirRepo := mysql.NewDirectoryRepository(gdb)
	asgRepo := mysql.NewAssignmentRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	payRepo := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	policy := ucledger.DailyRatePolicy{RatePerDay: cfg.LateFeeDailyRate}
	cutoff := ucledger.PrepaidCutoff(cfg.PrepaidUntil)

	asgUC := ucassignment.NewUsecase(dirRepo, asgRepo, uow, log)
	ledgerUC := ucledger.NewUsecase(loanRepo, policy, log)
	payUC := ucpayment.NewUsecase(loanRepo, payRepo, uow, cutoff, log)

	h := httpadp.NewHandler()
	asgH := httpadp.NewAssignmentHandler(asgUC)
	ledgerH := httpadp.NewLedgerHandler(ledgerUC)
	payH := httpadp.NewPaymentHandler(payUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idempotent := idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log)

	e.GET("/health", h.Health)

	e.POST("/assignments", asgH.CreateAssignment, idempotent)
	e.DELETE("/assignments/:assignment_id", asgH.RemoveAssignment)
	e.GET("/assignments", asgH.ListAssignments)
	e.GET("/assignments/guarantors/:guarantor_id/count", asgH.CountForGuarantor)
	e.GET("/assignments/clients/:client_id", asgH.HasAssignment)

	e.GET("/clients/:client_id/installments/pending", ledgerH.ListPendingInstallments)
	e.GET("/loans/:loan_id/installments/paid", ledgerH.ListPaidInstallments)

	e.POST("/installments/:installment_id/payments", payH.SubmitPayment, idempotent)
	e.POST("/payments/:submission_id/approve", payH.ApprovePayment)
	e.POST("/payments/:submission_id/reject", payH.RejectPayment)
	e.GET("/clients/:client_id/loans/:loan_id/proof", payH.GetProofOfPayment)
	e.GET("/installments/:installment_id/receipt", payH.GetReceipt)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
