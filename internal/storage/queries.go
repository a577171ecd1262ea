package storage

const (
	transactionColumns = `
		id, transaction_id, customer_id, recipient_id, amount, transaction_datetime, utc_offset_sec,
		is_fraud, fraud_probability, status, batch_id, version, created_at, updated_at
	`

	// Transaction queries
	GetTransactionByIDQuery = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE id = $1
	`

	// Вся история клиента, свежие сначала
	ListTransactionsByCustomerQuery = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE customer_id = $1
		ORDER BY transaction_datetime DESC, id DESC
	`

	ListTransactionIDsByBatchQuery = `
		SELECT id
		FROM transactions
		WHERE batch_id = $1
		ORDER BY id
	`

	// Общий список для аналитика, постранично
	ListTransactionsPageQuery = `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY transaction_datetime DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	CountTransactionsQuery = `
		SELECT COUNT(*)
		FROM transactions
	`

	ListFraudulentTransactionsQuery = `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE is_fraud
		ORDER BY transaction_datetime DESC, id DESC
		LIMIT $1
	`

	CreateTransactionQuery = `
		INSERT INTO transactions (
			transaction_id, customer_id, recipient_id, amount, transaction_datetime, utc_offset_sec,
			is_fraud, status, batch_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, version, created_at
	`

	// Блокировка строки перед записью результата анализа
	LockTransactionQuery = `
		SELECT version
		FROM transactions
		WHERE id = $1
		FOR UPDATE
	`

	UpdateTransactionAnalysisQuery = `
		UPDATE transactions
		SET fraud_probability = $1, status = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4
	`

	// Behavior pattern queries
	// При нескольких записях за один день побеждает последняя вставленная (id DESC)
	GetLatestBehaviorPatternQuery = `
		SELECT id, customer_id, trans_date,
			COALESCE(unique_os_versions_30d, 0), COALESCE(unique_phone_models_30d, 0),
			COALESCE(latest_phone_model, ''), COALESCE(latest_os_version, ''),
			COALESCE(logins_last_7_days, 0), COALESCE(logins_last_30_days, 0),
			avg_logins_per_day_7d::float8, avg_logins_per_day_30d::float8,
			login_freq_change_ratio::float8, login_ratio_7d_30d::float8,
			avg_session_interval_sec::float8, session_interval_std::float8,
			session_interval_variance::float8, exp_weighted_avg_interval::float8,
			burstiness_score::float8, fano_factor::float8, interval_zscore::float8
		FROM customer_behavior_patterns
		WHERE customer_id = $1
		ORDER BY trans_date DESC, id DESC
		LIMIT 1
	`

	CreateBehaviorPatternQuery = `
		INSERT INTO customer_behavior_patterns (
			customer_id, trans_date, unique_os_versions_30d, unique_phone_models_30d,
			latest_phone_model, latest_os_version, logins_last_7_days, logins_last_30_days,
			avg_logins_per_day_7d, avg_logins_per_day_30d, login_freq_change_ratio, login_ratio_7d_30d,
			avg_session_interval_sec, session_interval_std, session_interval_variance,
			exp_weighted_avg_interval, burstiness_score, fano_factor, interval_zscore
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`

	// Statistics queries
	// $1 порог блокировки, $2 порог ручной проверки
	DashboardTotalsQuery = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_fraud),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE is_fraud), 0),
			COUNT(*) FILTER (WHERE fraud_probability >= $1),
			COUNT(*) FILTER (WHERE fraud_probability >= $2 AND fraud_probability < $1)
		FROM transactions
	`

	TopRiskyCustomersQuery = `
		SELECT
			customer_id,
			COUNT(*),
			COUNT(*) FILTER (WHERE is_fraud),
			COALESCE(SUM(amount), 0),
			COALESCE(AVG(fraud_probability * 100), 0)::float8
		FROM transactions
		GROUP BY customer_id
		HAVING COUNT(*) FILTER (WHERE is_fraud) > 0
		ORDER BY COUNT(*) FILTER (WHERE is_fraud)::float8 / COUNT(*) DESC, customer_id
		LIMIT $1
	`

	// День считается в поясе клиента, как и ночное окно в правилах
	DailyVolumeQuery = `
		SELECT
			to_char((transaction_datetime AT TIME ZONE 'UTC') + make_interval(secs => utc_offset_sec), 'YYYY-MM-DD') AS day,
			COUNT(*),
			COUNT(*) FILTER (WHERE is_fraud),
			COALESCE(SUM(amount), 0)
		FROM transactions
		GROUP BY day
		ORDER BY day
	`

	// Batch job queries
	batchJobColumns = `
		id, filename, total_records, processed_records, failed_records, status,
		error_message, started_at, completed_at, created_at, created_by
	`

	CreateBatchJobQuery = `
		INSERT INTO batch_jobs (filename, total_records, status, started_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	GetBatchJobByIDQuery = `
		SELECT ` + batchJobColumns + `
		FROM batch_jobs
		WHERE id = $1
	`

	FinishBatchJobQuery = `
		UPDATE batch_jobs
		SET processed_records = $1, failed_records = $2, status = $3, error_message = $4, completed_at = $5
		WHERE id = $6
	`

	ListBatchJobsByCreatorQuery = `
		SELECT ` + batchJobColumns + `
		FROM batch_jobs
		WHERE created_by = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	// User queries
	CreateUserQuery = `
		INSERT INTO users (id, username, email, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, username, email, full_name, role, enabled, created_at, updated_at
	`

	GetUserByUsernameQuery = `
		SELECT id, username, email, full_name, role, password_hash, enabled, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	CheckUserExistsByUsernameQuery = `
		SELECT EXISTS(
			SELECT 1
			FROM users
			WHERE username = $1
		)
	`
)
